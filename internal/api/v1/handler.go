package v1

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/service"
	"marketplace/internal/store"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service *service.Service
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/users", h.handleCreateUser)
	r.Get("/freelancers/{freelancerID}", h.handleFreelancer)

	r.Post("/projects", h.handleCreateProject)
	r.Get("/projects/{projectID}", h.handleProject)
	r.Post("/projects/{projectID}/freelancers", h.handleAssignFreelancer)
	r.Post("/projects/{projectID}/milestones", h.handleCreateMilestone)
	r.Post("/projects/{projectID}/rating", h.handleRateProject)

	r.Post("/milestones/{milestoneID}", h.handleUpdateMilestone)
	r.Post("/milestones/{milestoneID}/progress", h.handleUpdateProgress)
	r.Post("/milestones/{milestoneID}/complete", h.handleCompleteMilestone)
	r.Delete("/milestones/{milestoneID}", h.handleDeleteMilestone)

	return r
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "name and email required", nil)
		return
	}
	role := domain.Role(req.Role)
	if role != domain.RoleClient && role != domain.RoleFreelancer && role != domain.RoleAdmin {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid role", map[string]string{"role": "invalid"})
		return
	}
	id, err := h.service.CreateUser(r.Context(), store.UserInput{Name: req.Name, Email: req.Email, Role: role})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

func (h *Handler) handleFreelancer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "freelancerID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid freelancer id", map[string]string{"freelancer_id": "invalid"})
		return
	}
	freelancer, err := h.service.GetFreelancer(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapFreelancerResponse(freelancer))
}

type createProjectRequest struct {
	ClientID    int64  `json:"client_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}

func (h *Handler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	if req.ClientID == 0 || strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "client_id and title required", nil)
		return
	}
	difficulty := domain.Difficulty(req.Difficulty)
	if difficulty != domain.DifficultyEasy && difficulty != domain.DifficultyMedium && difficulty != domain.DifficultyHard {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid difficulty", map[string]string{"difficulty": "invalid"})
		return
	}
	id, err := h.service.CreateProject(r.Context(), store.ProjectInput{
		ClientID:    req.ClientID,
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  difficulty,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

func (h *Handler) handleProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid project id", map[string]string{"project_id": "invalid"})
		return
	}
	project, err := h.service.GetProject(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProjectResponse(project))
}

type assignFreelancerRequest struct {
	FreelancerID int64 `json:"freelancer_id"`
}

func (h *Handler) handleAssignFreelancer(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid project id", map[string]string{"project_id": "invalid"})
		return
	}
	var req assignFreelancerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	if req.FreelancerID == 0 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "freelancer_id required", map[string]string{"freelancer_id": "required"})
		return
	}
	if err := h.service.AssignFreelancer(r.Context(), projectID, req.FreelancerID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type createMilestoneRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	PriorityRank int       `json:"priority_rank"`
	Deadline     time.Time `json:"deadline"`
}

func (h *Handler) handleCreateMilestone(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid project id", map[string]string{"project_id": "invalid"})
		return
	}
	var req createMilestoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "title required", map[string]string{"title": "required"})
		return
	}
	if req.PriorityRank < 0 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid priority rank", map[string]string{"priority_rank": "must be positive"})
		return
	}
	if !req.Deadline.After(time.Now()) {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "deadline must be in the future", map[string]string{"deadline": "past"})
		return
	}
	id, err := h.service.CreateMilestone(r.Context(), store.MilestoneInput{
		ProjectID:    projectID,
		Title:        req.Title,
		Description:  req.Description,
		PriorityRank: req.PriorityRank,
		Deadline:     req.Deadline,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"id": id})
}

type updateMilestoneRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	PriorityRank int       `json:"priority_rank"`
	Deadline     time.Time `json:"deadline"`
}

func (h *Handler) handleUpdateMilestone(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "milestoneID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid milestone id", map[string]string{"milestone_id": "invalid"})
		return
	}
	var req updateMilestoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "title required", map[string]string{"title": "required"})
		return
	}
	if req.PriorityRank < 0 {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid priority rank", map[string]string{"priority_rank": "must be positive"})
		return
	}
	if err := h.service.UpdateMilestone(r.Context(), store.MilestoneUpdateInput{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		PriorityRank: req.PriorityRank,
		Deadline:     req.Deadline,
	}); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type updateProgressRequest struct {
	Progress int `json:"progress"`
}

func (h *Handler) handleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "milestoneID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid milestone id", map[string]string{"milestone_id": "invalid"})
		return
	}
	var req updateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	if err := h.service.UpdateMilestoneProgress(r.Context(), id, req.Progress); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleCompleteMilestone(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "milestoneID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid milestone id", map[string]string{"milestone_id": "invalid"})
		return
	}
	if err := h.service.CompleteMilestone(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleDeleteMilestone(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "milestoneID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid milestone id", map[string]string{"milestone_id": "invalid"})
		return
	}
	if err := h.service.DeleteMilestone(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type rateProjectRequest struct {
	Rating int `json:"rating"`
}

func (h *Handler) handleRateProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid project id", map[string]string{"project_id": "invalid"})
		return
	}
	var req rateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	results, err := h.service.RateProject(r.Context(), projectID, req.Rating)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapRatingResponse(results))
}

func parseID(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}
