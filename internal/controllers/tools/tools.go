// Package tools implements the named operations that conversational
// agents call. Every tool is invoked with a POST request carrying a
// JSON object of named parameters and answers with a JSON envelope
// that has exactly one of "data" and "error" set.
package tools

import (
	"net/http"

	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// Tool is one named operation exposed to agents.
type Tool struct {
	Name        string
	Description string
	Handler     gin.HandlerFunc
}

// All returns every registered tool in a stable order.
func All() []Tool {
	return []Tool{
		{"add_expense", "Record a new expense", AddExpense},
		{"get_expenses", "List expenses, optionally filtered by category and date range", GetExpenses},
		{"update_expense", "Change fields of an existing expense", UpdateExpense},
		{"delete_expense", "Remove an expense", DeleteExpense},
		{"get_summary", "Spending per category for a period", GetSummary},
		{"get_top_expenses", "The highest single expenses", GetTopExpenses},
		{"set_budget", "Create or replace the monthly limit for a category", SetBudget},
		{"get_budget_status", "Compare budgets against actual spending for a month", GetBudgetStatus},
	}
}

// RegisterRoutes registers one route per tool with the RouterGroup
// that is passed, plus the tool directory at the group root.
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", GetTools)
	r.OPTIONS("", httputil.OptionsGet)

	for _, tool := range All() {
		r.POST("/"+tool.Name, tool.Handler)
		r.OPTIONS("/"+tool.Name, httputil.OptionsPost)
	}
}

// ToolLink describes one tool in the directory.
type ToolLink struct {
	Name        string `json:"name" example:"add_expense"`
	Description string `json:"description" example:"Record a new expense"`
	Call        string `json:"call" example:"https://example.com/v1/tools/add_expense"`
}

type ToolListResponse struct {
	Data []ToolLink `json:"data"`
}

// @Summary		Tool directory
// @Description	Returns the list of callable tools
// @Tags			Tools
// @Produce		json
// @Success		200	{object}	ToolListResponse
// @Router			/v1/tools [get]
func GetTools(c *gin.Context) {
	base := httputil.RequestPathV1(c) + "/tools/"

	links := make([]ToolLink, 0, len(All()))
	for _, tool := range All() {
		links = append(links, ToolLink{
			Name:        tool.Name,
			Description: tool.Description,
			Call:        base + tool.Name,
		})
	}

	c.JSON(http.StatusOK, ToolListResponse{Data: links})
}
