package middleware

import (
	"context"
	"net/http"

	"github.com/meridianhr/pathfinder/internal/api"
	"github.com/meridianhr/pathfinder/internal/domain"
)

type contextKey string

const EmployeeIDKey contextKey = "employee_id"

// RequireEmployeeID extracts the caller's employee ID from the trusted
// X-Employee-ID header set by the portal gateway. Requests without it are
// rejected before reaching any handler.
func RequireEmployeeID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		employeeID := r.Header.Get("X-Employee-ID")
		if employeeID == "" {
			api.HandleError(w, domain.ErrMissingIdentity)
			return
		}

		ctx := context.WithValue(r.Context(), EmployeeIDKey, employeeID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetEmployeeID returns the employee ID from context.
func GetEmployeeID(ctx context.Context) string {
	employeeID, _ := ctx.Value(EmployeeIDKey).(string)
	return employeeID
}
