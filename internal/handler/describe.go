package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"itexe-marketplace-api/internal/genai"
	"itexe-marketplace-api/pkg/apierror"
	"itexe-marketplace-api/pkg/response"
)

// DescribeHandler drafts product descriptions for the sell form.
type DescribeHandler struct {
	client *genai.Client
}

// NewDescribeHandler creates a new describe handler.
func NewDescribeHandler(client *genai.Client) *DescribeHandler {
	return &DescribeHandler{client: client}
}

type describeRequest struct {
	ProductName string `json:"productName"`
	Category    string `json:"category"`
}

// Describe handles POST /api/v1/describe
func (h *DescribeHandler) Describe(w http.ResponseWriter, r *http.Request) {
	var req describeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}
	if req.ProductName == "" || req.Category == "" {
		response.Error(w, apierror.BadRequest("productName and category are required"))
		return
	}

	description, err := h.client.GenerateDescription(r.Context(), req.ProductName, req.Category)
	if err != nil {
		if errors.Is(err, genai.ErrNotConfigured) {
			response.Error(w, apierror.ServiceUnavailable("Description drafting is not configured"))
			return
		}
		response.Error(w, apierror.ServiceUnavailable("Failed to generate description"))
		return
	}

	response.OK(w, map[string]string{"description": description})
}
