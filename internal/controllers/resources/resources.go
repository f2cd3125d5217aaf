// Package resources implements read-only, addressable views on the
// stored data. Agents load them as context, so the output is plain
// text meant to be quoted verbatim into a conversation.
package resources

import (
	"net/http"

	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// View is one addressable read-only projection.
type View struct {
	Name        string
	Description string
	Handler     gin.HandlerFunc
}

// All returns every registered view in a stable order.
func All() []View {
	return []View{
		{"expenses", "All recorded expenses, most recent first", GetAllExpenses},
		{"summary", "Spending per category for the current month", GetMonthlySummary},
		{"categories", "The categories observed on stored expenses", GetCategories},
		{"budget-status", "Budgets compared against spending for the current month", GetBudgetStatus},
	}
}

// RegisterRoutes registers one route per view with the RouterGroup
// that is passed, plus the view directory at the group root.
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", GetResources)
	r.OPTIONS("", httputil.OptionsGet)

	for _, view := range All() {
		r.GET("/"+view.Name, view.Handler)
		r.OPTIONS("/"+view.Name, httputil.OptionsGet)
	}
}

// ViewLink describes one view in the directory.
type ViewLink struct {
	Name        string `json:"name" example:"summary"`
	Description string `json:"description" example:"Spending per category for the current month"`
	URL         string `json:"url" example:"https://example.com/v1/resources/summary"`
}

type ViewListResponse struct {
	Data []ViewLink `json:"data"`
}

// @Summary		Resource directory
// @Description	Returns the list of readable resource views
// @Tags			Resources
// @Produce		json
// @Success		200	{object}	ViewListResponse
// @Router			/v1/resources [get]
func GetResources(c *gin.Context) {
	base := httputil.RequestPathV1(c) + "/resources/"

	links := make([]ViewLink, 0, len(All()))
	for _, view := range All() {
		links = append(links, ViewLink{
			Name:        view.Name,
			Description: view.Description,
			URL:         base + view.Name,
		})
	}

	c.JSON(http.StatusOK, ViewListResponse{Data: links})
}
