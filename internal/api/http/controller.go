package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/solindexer/sonar/internal/app"
	"github.com/solindexer/sonar/internal/core"
)

// @title      		sonar
// @version         0.1.0
// @description     Tracks per-wallet interaction counts with a Solana program.

// @host      		localhost
// @BasePath  		/api/v1
// @schemes 		http

var basePath = "/api/v1"

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

var _ QueryController = (*Controller)(nil)

type Controller struct {
	svc app.QueryService
}

func NewController(svc app.QueryService) *Controller {
	return &Controller{svc: svc}
}

func paramErr(ctx *gin.Context, param string, err error) {
	ctx.IndentedJSON(http.StatusBadRequest, gin.H{"param": param, "error": err.Error()})
}

func internalErr(ctx *gin.Context, err error) {
	log.Error().Str("path", ctx.FullPath()).Err(err).Msg("internal server error")
	ctx.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// GetWalletCounter godoc
//	@Summary		wallet interaction counter
//	@Description	Returns the interaction counter of one wallet
//	@Tags			wallet
//	@Accept			json
//	@Produce		json
//  @Param   		address     path   string 	true   "wallet address"
//	@Success		200		{object}	core.WalletCounter
//	@Router			/wallets/{address} [get]
func (c *Controller) GetWalletCounter(ctx *gin.Context) {
	address := ctx.Param("address")
	if address == "" {
		paramErr(ctx, "address", errors.New("empty address"))
		return
	}

	ret, err := c.svc.GetWalletCounter(ctx, address)
	if errors.Is(err, core.ErrNotFound) {
		ctx.IndentedJSON(http.StatusNotFound, gin.H{"address": address, "error": "unknown wallet"})
		return
	}
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetLeaderboard godoc
//	@Summary		top interacting wallets
//	@Description	Returns wallets ranked by interaction count, ties broken by earliest update
//	@Tags			wallet
//	@Accept			json
//	@Produce		json
//  @Param   		limit	    query   int 	false	"number of wallets, default 10"
//	@Success		200		{array}		core.WalletCounter
//	@Router			/leaderboard [get]
func (c *Controller) GetLeaderboard(ctx *gin.Context) {
	limit := defaultLeaderboardLimit
	if raw := ctx.Query("limit"); raw != "" {
		l, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || l < 1 {
			paramErr(ctx, "limit", errors.New("limit must be a positive integer"))
			return
		}
		limit = int(l)
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	ret, err := c.svc.GetLeaderboard(ctx, limit)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}

// GetStatistics godoc
//	@Summary		indexing statistics
//	@Description	Returns tracked wallet totals and the current scan checkpoint
//	@Tags			statistics
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	core.Statistics
//	@Router			/statistics [get]
func (c *Controller) GetStatistics(ctx *gin.Context) {
	ret, err := c.svc.GetStatistics(ctx)
	if err != nil {
		internalErr(ctx, err)
		return
	}
	ctx.IndentedJSON(http.StatusOK, ret)
}
