package agents

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/solwyn/aura/internal/analytics"
	"github.com/solwyn/aura/internal/completion"
	"github.com/solwyn/aura/internal/routes"
	"github.com/solwyn/aura/pkg/handlers"
)

// Envelope titles for the fixed error vocabulary.
const (
	titleValidation = "Validation error"
	titleNotFound   = "Agent not found"
	titleInternal   = "Internal server error"

	internalMessage = "An unexpected error occurred"
)

// Handler provides the HTTP handlers for agent metadata and interaction.
type Handler struct {
	sys         System
	completions completion.Client
	recorder    analytics.Recorder
	logger      *slog.Logger
}

// NewHandler creates the agents HTTP handler with its collaborators.
func NewHandler(sys System, completions completion.Client, recorder analytics.Recorder, logger *slog.Logger) *Handler {
	return &Handler{
		sys:         sys,
		completions: completions,
		recorder:    recorder,
		logger:      logger,
	}
}

// Routes returns the route groups for agent endpoints.
func (h *Handler) Routes() []routes.Group {
	return []routes.Group{
		{
			Prefix:      "/api/agents",
			Description: "Agent profile listing",
			Routes: []routes.Route{
				{Method: "GET", Pattern: "", Handler: h.List},
			},
		},
		{
			Prefix:      "/api/agent",
			Description: "Agent metadata and interaction",
			Routes: []routes.Route{
				{Method: "GET", Pattern: "/{name}", Handler: h.Find},
				{Method: "POST", Pattern: "/{name}/interact", Handler: h.Interact},
			},
		},
	}
}

// List handles GET /api/agents to retrieve profile summaries.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, titleInternal, internalMessage)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find handles GET /api/agent/{name} to retrieve a profile's fields verbatim.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	agent, err := h.sys.Find(r.Context(), name)
	if err != nil {
		h.respondLookupError(w, name, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, agent)
}

// Interact handles POST /api/agent/{name}/interact: validate the message,
// resolve the profile, synthesize the system prompt, invoke the generation
// provider, record usage best-effort, and emit the reply envelope.
func (h *Handler) Interact(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	req, err := ParseInteractRequest(r.Body)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, titleValidation, err.Error())
		return
	}

	agent, err := h.sys.Find(r.Context(), name)
	if err != nil {
		h.respondLookupError(w, name, err)
		return
	}

	reply, err := h.completions.Complete(r.Context(), BuildSystemPrompt(agent), req.Message)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, titleInternal, internalMessage)
		return
	}

	// Best-effort: the write's outcome is observed only to log a warning
	// and must never alter the response.
	if err := h.recorder.RecordInteraction(
		r.Context(), agent.Name,
		utf8.RuneCountInString(req.Message), utf8.RuneCountInString(reply),
	); err != nil {
		h.logger.Warn("analytics write failed", "agent", agent.Name, "error", err)
	}

	handlers.RespondJSON(w, http.StatusOK, InteractionReply{
		Agent:     agent.Name,
		Reply:     reply,
		Timestamp: time.Now().UTC(),
	})
}

func (h *Handler) respondLookupError(w http.ResponseWriter, name string, err error) {
	if errors.Is(err, ErrNotFound) {
		message := fmt.Sprintf("The agent '%s' does not exist in the database", name)
		handlers.RespondError(w, h.logger, http.StatusNotFound, titleNotFound, message)
		return
	}
	handlers.RespondError(w, h.logger, MapHTTPStatus(err), titleInternal, internalMessage)
}
