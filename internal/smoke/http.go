package smoke

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/fabcar-web/internal/domain/model"
	"github.com/okian/fabcar-web/pkg/logger"
)

// Worker configuration constants.
const (
	workerChannelMultiplier = 2
	maxBodyBytes            = 1 << 20
)

var carRow = regexp.MustCompile(`<tr class="car"><td>(.*?)</td><td>(.*?)</td><td>(.*?)</td><td>(.*?)</td><td>(.*?)</td></tr>`)

// browser talks to the front end like a form-submitting browser. Redirects
// are not followed so they can be checked.
type browser struct {
	client  *http.Client
	baseURL string
}

func newBrowser(baseURL string, timeout time.Duration) *browser {
	return &browser{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type page struct {
	status   int
	location string
	body     string
}

func (b *browser) get(ctx context.Context, path string) (page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+path, http.NoBody)
	if err != nil {
		return page{}, fmt.Errorf("build request: %w", err)
	}
	return b.do(req)
}

func (b *browser) postForm(ctx context.Context, path string, form url.Values) (page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return page{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) do(req *http.Request) (page, error) {
	resp, err := b.client.Do(req)
	if err != nil {
		return page{}, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return page{}, fmt.Errorf("read %s: %w", req.URL.Path, err)
	}
	return page{status: resp.StatusCode, location: resp.Header.Get("Location"), body: string(body)}, nil
}

// parseCars extracts the rows of the cars view.
func parseCars(body string) []model.Car {
	matches := carRow.FindAllStringSubmatch(body, -1)
	cars := make([]model.Car, 0, len(matches))
	for _, m := range matches {
		cars = append(cars, model.Car{
			CarNumber: html.UnescapeString(m[1]),
			Make:      html.UnescapeString(m[2]),
			Model:     html.UnescapeString(m[3]),
			Colour:    html.UnescapeString(m[4]),
			Owner:     html.UnescapeString(m[5]),
		})
	}
	return cars
}

func createForm(c model.Car) url.Values {
	return url.Values{
		"carnumber": {c.CarNumber},
		"make":      {c.Make},
		"model":     {c.Model},
		"colour":    {c.Colour},
		"owner":     {c.Owner},
	}
}

// submitCars creates cars concurrently using a worker pool and checks that
// every creation redirects to the lookup of its own number.
func submitCars(ctx context.Context, cfg *Config, b *browser, cars []model.Car, stats *Stats) error {
	log := logger.Get()
	log.Info(ctx, "submitting cars", logger.Int("cars", len(cars)), logger.Int("workers", cfg.Workers))

	var (
		submitted int64
		firstErr  error
		errOnce   sync.Once
	)

	carChan := make(chan model.Car, cfg.Workers*workerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for car := range carChan {
				if err := submitSingleCar(ctx, b, car); err != nil {
					errOnce.Do(func() { firstErr = err })
					continue
				}
				n := atomic.AddInt64(&submitted, 1)
				if cfg.Verbose {
					log.Debug(ctx, "car submitted", logger.String("carnumber", car.CarNumber), logger.Int("done", int(n)))
				}
			}
		}()
	}

	go func() {
		defer close(carChan)
		for _, car := range cars {
			select {
			case <-ctx.Done():
				return
			case carChan <- car:
			}
		}
	}()

	wg.Wait()
	stats.CarsSubmitted = int(atomic.LoadInt64(&submitted))

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

func submitSingleCar(ctx context.Context, b *browser, car model.Car) error {
	p, err := b.postForm(ctx, "/createCar", createForm(car))
	if err != nil {
		return err
	}
	want := "/queryCar?carnumber=" + url.QueryEscape(car.CarNumber)
	if p.status != http.StatusFound || p.location != want {
		return fmt.Errorf("%w: createCar %s answered %d -> %q", ErrUnexpectedView, car.CarNumber, p.status, p.location)
	}
	return nil
}
