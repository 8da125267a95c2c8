package escrow

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/QuangTung97/crowd-escrow/model"
	"github.com/QuangTung97/crowd-escrow/pkg/otellib"
)

// IdentityHeader carries the identity of the caller, authenticated upstream
const IdentityHeader = "X-Identity"

// ErrMissingIdentity ...
var ErrMissingIdentity = newError(ErrorKindAuthorization, "MissingIdentity", "caller identity header is required")

// Server exposes IService over HTTP
type Server struct {
	service IService
}

// NewServer ...
func NewServer(service IService) *Server {
	return &Server{
		service: service,
	}
}

// Router ...
func (s *Server) Router(tracer trace.Tracer, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otellib.SetTraceInfoMiddleware(tracer, logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.POST("/campaigns", s.createCampaign)
		api.GET("/campaigns/:key", s.getCampaign)
		api.POST("/campaigns/:key/fund", s.fund)
		api.POST("/campaigns/:key/withdraw", s.withdrawFunds)
		api.POST("/campaigns/:key/refund", s.claimRefund)
		api.POST("/campaigns/:key/reward/escrow", s.transferRewardToEscrow)
		api.POST("/campaigns/:key/reward/claim", s.claimReward)
		api.POST("/campaigns/:key/reward/admin-update", s.adminUpdateClaim)
		api.GET("/campaigns/:key/fundings", s.listFundings)
		api.GET("/campaigns/:key/fundings/:supporter", s.getFunding)
		api.GET("/campaigns/:key/events", s.listEvents)

		api.GET("/creators/:creator/campaigns", s.listCampaignsByCreator)

		api.GET("/treasury", s.treasuryBalance)
		api.POST("/treasury/withdraw", s.withdrawTreasury)

		api.GET("/accounts/:owner/balances", s.balances)
		api.POST("/accounts/:owner/deposit", s.deposit)
		api.POST("/accounts/:owner/reward-tokens", s.mintRewardToken)
	}
	return r
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func statusOf(kind ErrorKind) int {
	switch kind {
	case ErrorKindPrecondition, ErrorKindResource:
		return http.StatusConflict
	case ErrorKindAuthorization:
		return http.StatusForbidden
	case ErrorKindArithmetic:
		return http.StatusUnprocessableEntity
	case ErrorKindNotFound:
		return http.StatusNotFound
	case ErrorKindInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	var e *Error
	if errors.As(err, &e) {
		c.JSON(statusOf(e.Kind), errorResponse{
			Code:    e.Code,
			Message: e.Message,
		})
		return
	}

	otellib.WrapError(c.Request.Context(), err)
	c.JSON(http.StatusInternalServerError, errorResponse{
		Code:    "Internal",
		Message: "internal error",
	})
}

func callerOf(c *gin.Context) (string, bool) {
	caller := c.GetHeader(IdentityHeader)
	if caller == "" {
		writeError(c, ErrMissingIdentity)
		return "", false
	}
	if err := checkIdentity(caller); err != nil {
		writeError(c, err)
		return "", false
	}
	return caller, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		writeError(c, ErrInvalidInput.WithMessage(err.Error()))
		return false
	}
	return true
}

type amountRequest struct {
	Amount uint64 `json:"amount"`
}

type keyResponse struct {
	Key string `json:"key"`
}

type amountResponse struct {
	Amount uint64 `json:"amount"`
}

type balanceResponse struct {
	Balance uint64 `json:"balance"`
}

type mintRewardTokenRequest struct {
	TokenID string `json:"token_id"`
}

type eventResponse struct {
	model.Event
	Data json.RawMessage `json:"data"`
}

func (s *Server) createCampaign(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}

	var input CreateCampaignInput
	if !bindJSON(c, &input) {
		return
	}
	input.Creator = caller

	key, err := s.service.CreateCampaign(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, keyResponse{Key: key})
}

func (s *Server) getCampaign(c *gin.Context) {
	view, err := s.service.GetCampaign(c.Request.Context(), c.Param("key"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) fund(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}

	var req amountRequest
	if !bindJSON(c, &req) {
		return
	}

	campaign, err := s.service.Fund(c.Request.Context(), FundInput{
		CampaignKey: c.Param("key"),
		Supporter:   caller,
		Amount:      req.Amount,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (s *Server) withdrawFunds(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}

	output, err := s.service.WithdrawFunds(c.Request.Context(), c.Param("key"), caller)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (s *Server) claimRefund(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}

	amount, err := s.service.ClaimRefund(c.Request.Context(), c.Param("key"), caller)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, amountResponse{Amount: amount})
}

func (s *Server) transferRewardToEscrow(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}

	err := s.service.TransferRewardToEscrow(c.Request.Context(), c.Param("key"), caller)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) claimReward(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}

	output, err := s.service.ClaimReward(c.Request.Context(), c.Param("key"), caller)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (s *Server) adminUpdateClaim(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}

	var input AdminUpdateClaimInput
	if !bindJSON(c, &input) {
		return
	}
	input.CampaignKey = c.Param("key")
	input.Caller = caller

	//revive:disable-next-line:deprecated
	if err := s.service.AdminUpdateClaim(c.Request.Context(), input); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listFundings(c *gin.Context) {
	fundings, err := s.service.ListFundings(c.Request.Context(), c.Param("key"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, fundings)
}

func (s *Server) getFunding(c *gin.Context) {
	funding, err := s.service.GetFunding(c.Request.Context(), c.Param("key"), c.Param("supporter"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, funding)
}

func (s *Server) listEvents(c *gin.Context) {
	events, err := s.service.ListEvents(c.Request.Context(), c.Param("key"))
	if err != nil {
		writeError(c, err)
		return
	}

	result := make([]eventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, eventResponse{
			Event: e,
			Data:  e.Data,
		})
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) listCampaignsByCreator(c *gin.Context) {
	views, err := s.service.ListCampaignsByCreator(c.Request.Context(), c.Param("creator"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (s *Server) treasuryBalance(c *gin.Context) {
	balance, err := s.service.TreasuryBalance(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, balanceResponse{Balance: balance})
}

func (s *Server) withdrawTreasury(c *gin.Context) {
	caller, ok := callerOf(c)
	if !ok {
		return
	}

	var req amountRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := s.service.WithdrawTreasury(c.Request.Context(), caller, req.Amount); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, amountResponse{Amount: req.Amount})
}

func (s *Server) balances(c *gin.Context) {
	custodies, err := s.service.Balances(c.Request.Context(), c.Param("owner"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, custodies)
}

func (s *Server) deposit(c *gin.Context) {
	var req amountRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := s.service.Deposit(c.Request.Context(), c.Param("owner"), req.Amount); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, amountResponse{Amount: req.Amount})
}

func (s *Server) mintRewardToken(c *gin.Context) {
	var req mintRewardTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := s.service.MintRewardToken(c.Request.Context(), c.Param("owner"), req.TokenID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
