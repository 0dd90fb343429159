package http_handler

import (
	"context"
	"time"

	"github.com/anthanhphan/go-stream-router/internal/router/config"
	"github.com/anthanhphan/go-stream-router/internal/router/domain"
	"github.com/anthanhphan/go-stream-router/internal/router/port"
	"github.com/anthanhphan/go-stream-router/pkg/hashkey"
	sdklogger "github.com/anthanhphan/gosdk/logger"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Server exposes the routing cache over HTTP for producers that sit
// outside the process, plus admin triggers.
type Server struct {
	app     *fiber.App
	cfg     *config.Config
	service port.RouterService
	hasher  *hashkey.Hasher
}

func NewServer(cfg *config.Config, service port.RouterService, hasher *hashkey.Hasher) *Server {
	app := fiber.New(fiber.Config{})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())

	s := &Server{
		app:     app,
		cfg:     cfg,
		service: service,
		hasher:  hasher,
	}

	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.app.Get("/route", s.handleRoute)
	s.app.Get("/shards/:id", s.handleGetShard)
	s.app.Post("/invalidate", s.handleInvalidate)
	s.app.Post("/refresh", s.handleRefresh)
	s.app.Get("/status", s.handleStatus)
}

func (s *Server) Start() error {
	return s.app.Listen(s.cfg.Server.Addr)
}

func (s *Server) Stop(ctx context.Context) error {
	return s.app.Shutdown()
}

func (s *Server) sendJSONError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// handleRoute resolves either an explicit decimal hash (?hash=) or a
// partition key (?key=) to the responsible shard.
func (s *Server) handleRoute(c *fiber.Ctx) error {
	var hash = domain.MaxHashKey
	switch {
	case c.Query("hash") != "":
		h, err := domain.ParseHashKey(c.Query("hash"))
		if err != nil {
			return s.sendJSONError(c, fiber.StatusBadRequest, err.Error())
		}
		hash = h
	case c.Query("key") != "":
		hash = s.hasher.HashKey(c.Query("key"))
	default:
		return s.sendJSONError(c, fiber.StatusBadRequest, "Missing 'key' or 'hash' query parameter")
	}

	id, ok := s.service.ShardID(hash)
	if !ok {
		return s.sendJSONError(c, fiber.StatusNotFound, "No shard mapping available")
	}

	return c.JSON(fiber.Map{
		"shard_id": id.String(),
		"hash_key": domain.FormatHashKey(hash),
	})
}

func (s *Server) handleGetShard(c *fiber.Ctx) error {
	id, err := domain.ParsePartitionID(c.Params("id"))
	if err != nil {
		return s.sendJSONError(c, fiber.StatusBadRequest, err.Error())
	}

	d, ok := s.service.GetShard(id)
	if !ok {
		return s.sendJSONError(c, fiber.StatusNotFound, "Shard not found")
	}

	return c.JSON(descriptorJSON(d))
}

type invalidateRequest struct {
	SeenAtMs       int64  `json:"seen_at_ms"`
	PredictedShard string `json:"predicted_shard"`
}

func (s *Server) handleInvalidate(c *fiber.Ctx) error {
	var req invalidateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return s.sendJSONError(c, fiber.StatusBadRequest, "Malformed request body")
		}
	}

	seenAt := time.Now()
	if req.SeenAtMs > 0 {
		seenAt = time.UnixMilli(req.SeenAtMs)
	}

	var predicted *domain.PartitionID
	if req.PredictedShard != "" {
		id, err := domain.ParsePartitionID(req.PredictedShard)
		if err != nil {
			return s.sendJSONError(c, fiber.StatusBadRequest, err.Error())
		}
		predicted = &id
	}

	s.service.Invalidate(seenAt, predicted)
	return c.SendStatus(fiber.StatusAccepted)
}

func (s *Server) handleRefresh(c *fiber.Ctx) error {
	sdklogger.Infow("External shard map refresh requested", "stream", s.cfg.Stream.Name)
	s.service.Update()
	return c.SendStatus(fiber.StatusAccepted)
}

func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(s.service.Stats())
}

func descriptorJSON(d domain.PartitionDescriptor) fiber.Map {
	return fiber.Map{
		"shard_id":                 d.ID.String(),
		"starting_hash_key":        domain.FormatHashKey(d.Range.Start),
		"ending_hash_key":          domain.FormatHashKey(d.Range.End),
		"starting_sequence_number": d.SequenceRange.Start,
		"ending_sequence_number":   d.SequenceRange.End,
		"closed":                   d.IsClosed(),
	}
}
