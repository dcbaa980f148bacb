package http

import (
	"encoding/json"
	"net/http"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/setting"
	"github.com/shiftwise/timeclock-backend-go/internal/handler/http/response"
)

type SettingHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type settingHandlerImpl struct {
	settingsService setting.SettingsService
}

func NewSettingHandler(settingsService setting.SettingsService) SettingHandler {
	return &settingHandlerImpl{settingsService: settingsService}
}

func (h *settingHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *settingHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req setting.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settingsService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Settings updated", result)
}
