package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/domain"
	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/utils"
)

func (h *Handler) GetPostsStatistics(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	// 日期参数必须都是整数
	values := make(map[string]int, 4)
	for _, name := range []string{"start_year", "start_month", "end_year", "end_month"} {
		value, err := strconv.Atoi(params.Get(name))
		if err != nil {
			h.errorResponse(w, r, http.StatusBadRequest, "日期参数必须是整数")
			return
		}
		values[name] = value
	}

	startYear, startMonth := values["start_year"], values["start_month"]
	endYear, endMonth := values["end_year"], values["end_month"]

	if err := utils.ValidateStatisticsRange(startYear, startMonth, endYear, endMonth); err != nil {
		h.errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// ids 为空时统计所有部门
	subunitIDs := make([]int64, 0)
	if idsParam := params.Get("ids"); idsParam != "" {
		for _, s := range strings.Split(idsParam, ",") {
			id, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				h.errorResponse(w, r, http.StatusBadRequest, "部门ID无效")
				return
			}
			subunitIDs = append(subunitIDs, id)
		}
	}

	var subunits []*domain.Subunit
	var err error
	if len(subunitIDs) > 0 {
		subunits, err = h.repository.GetSubunitsByIDs(subunitIDs)
	} else {
		subunits, err = h.repository.GetAllSubunits()
	}
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 先为每个部门的每个月份填零，再叠加数据库中的统计结果
	months := domain.MonthsInRange(startYear, startMonth, endYear, endMonth)
	statistics := make(domain.Statistics, len(subunits))
	subunitNames := make(map[int64]string, len(subunits))
	for _, subunit := range subunits {
		subunitNames[subunit.ID] = subunit.Name
		statistics[subunit.Name] = make(domain.StatisticsMonths, len(months))
		for _, month := range months {
			statistics[subunit.Name][month] = 0
		}
	}

	start := time.Date(startYear, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, time.Month(endMonth), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)

	rows, err := h.repository.GetPostsStatistics(start, end, subunitIDs)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	for _, row := range rows {
		name, ok := subunitNames[row.SubunitID]
		if !ok {
			continue
		}
		statistics[name][row.Month] = row.Count
	}

	h.successResponse(w, r, http.StatusOK, "获取统计数据成功", statistics)
}
