package web

import (
	"net/http"
	"net/url"

	"github.com/okian/fabcar-web/internal/domain/model"
	"github.com/okian/fabcar-web/pkg/logger"
)

// CarsHandler serves the landing page and the four car operations.
type CarsHandler struct {
	deps   Dependencies
	views  *views
	logger logger.Logger
}

// NewCarsHandler creates a new cars handler.
func NewCarsHandler(deps Dependencies, v *views, l logger.Logger) *CarsHandler {
	return &CarsHandler{deps: deps, views: v, logger: l}
}

// HandleIndex handles GET / requests.
func (h *CarsHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if err := h.views.render(w, viewIndex, nil); err != nil {
		h.fail(w, r, "render index", err)
	}
}

// HandleQueryAllCars handles GET /queryAllCars requests.
func (h *CarsHandler) HandleQueryAllCars(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	cars, err := h.deps.QueryAllCars(r.Context())
	if err != nil {
		h.fail(w, r, "query all cars", err)
		return
	}
	if err := h.views.renderCars(w, cars); err != nil {
		h.fail(w, r, "render cars", err)
	}
}

// HandleQueryCar handles GET /queryCar?carnumber= requests. A failed lookup
// renders an empty list.
func (h *CarsHandler) HandleQueryCar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	lookup := h.deps.LookupCar(r.Context(), r.URL.Query().Get("carnumber"))
	if err := h.views.renderCars(w, lookup.Cars()); err != nil {
		h.fail(w, r, "render cars", err)
	}
}

// HandleCreateCar handles POST /createCar requests. The browser is always
// redirected to the lookup of the submitted car number.
func (h *CarsHandler) HandleCreateCar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	car := model.Car{
		CarNumber: r.PostFormValue("carnumber"),
		Make:      r.PostFormValue("make"),
		Model:     r.PostFormValue("model"),
		Colour:    r.PostFormValue("colour"),
		Owner:     r.PostFormValue("owner"),
	}
	_ = h.deps.SubmitCar(r.Context(), car)
	http.Redirect(w, r, "/queryCar?carnumber="+url.QueryEscape(car.CarNumber), http.StatusFound)
}

// HandleChangeCarOwner handles POST /changeCarOwner requests.
func (h *CarsHandler) HandleChangeCarOwner(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	car, err := h.deps.ChangeCarOwner(r.Context(), r.PostFormValue("carnumber"), r.PostFormValue("newowner"))
	if err != nil {
		h.fail(w, r, "change car owner", err)
		return
	}
	if err := h.views.renderCars(w, []model.Car{car}); err != nil {
		h.fail(w, r, "render cars", err)
	}
}

func (h *CarsHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	ctx := r.Context()
	h.logger.Error(ctx, op+" failed",
		logger.String("request_id", RequestID(ctx)),
		logger.String("path", r.URL.Path),
		logger.Error(err),
	)
	writeInternalError(w)
}
