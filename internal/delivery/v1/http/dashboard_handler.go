package http

import (
	"net/http"

	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
)

type DashboardHandler struct {
	dashboardUC usecase.DashboardUC
	logger      logger.Logger
}

func NewDashboardHandler(dashboardUC usecase.DashboardUC, logger logger.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC, logger: logger}
}

// getSummary
//
//	@Summary		Сводка активности
//	@Description	Подневные итоги продаж, закупок, выпуска и списаний за последние N дней
//	@Tags			dashboard
//	@Produce		json
//	@Param			days	query		int	false	"Число дней (1-90, по умолчанию 7)"
//	@Success		200		{object}	usecase.DashboardSummary
//	@Failure		400		{object}	ErrorResponse	"Недопустимый диапазон"
//	@Router			/dashboard [get]
func (d *DashboardHandler) getSummary(w http.ResponseWriter, r *http.Request) {
	const defaultDays = 7

	days, err := parseIntQuery(r, "days", defaultDays)
	if err != nil {
		d.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	summary, err := d.dashboardUC.Summary(r.Context(), &usecase.DashboardReq{Days: days})
	if err != nil {
		d.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, summary)
}
