package handler

import (
	"autosallon/internal/api/middleware"
	"autosallon/internal/app/service"
	"autosallon/internal/common"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type CarHandler struct {
	carService *service.CarService
}

func NewCarHandler(carService *service.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

func (h *CarHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listCars)       // GET /api/cars
	r.Get("/{carID}", h.getCar)  // GET /api/cars/42

	r.Group(func(adminRouter chi.Router) {
		adminRouter.Use(middleware.RequireAdmin)
		adminRouter.Post("/", h.createCar)          // POST /api/cars
		adminRouter.Patch("/{carID}", h.updateCar)  // PATCH /api/cars/42
		adminRouter.Delete("/{carID}", h.deleteCar) // DELETE /api/cars/42
	})
}

func (h *CarHandler) listCars(w http.ResponseWriter, r *http.Request) {
	// The full result set goes out in insertion order; filtering and sorting
	// are client-side concerns.
	cars, err := h.carService.ListCars(r.Context())
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, cars)
}

func (h *CarHandler) getCar(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "carID"))
	if err != nil {
		common.RespondWithError(w, http.StatusNotFound, "Car not found")
		return
	}

	car, err := h.carService.GetCar(r.Context(), id)
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, car)
}

func (h *CarHandler) createCar(w http.ResponseWriter, r *http.Request) {
	var req service.CreateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	car, err := h.carService.CreateCar(r.Context(), req)
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, car)
}

func (h *CarHandler) updateCar(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "carID"))
	if err != nil {
		common.RespondWithError(w, http.StatusNotFound, "Car not found")
		return
	}

	var req service.UpdateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	car, err := h.carService.UpdateCar(r.Context(), id, req)
	if err != nil {
		common.RespondFromError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, car)
}

func (h *CarHandler) deleteCar(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "carID"))
	if err != nil {
		common.RespondWithError(w, http.StatusNotFound, "Car not found")
		return
	}

	if err := h.carService.DeleteCar(r.Context(), id); err != nil {
		common.RespondFromError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseID(raw string) (int, error) {
	return strconv.Atoi(raw)
}
