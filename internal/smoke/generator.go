package smoke

import (
	"strings"

	"github.com/google/uuid"

	"github.com/okian/fabcar-web/internal/domain/model"
)

var (
	makes   = []string{"Toyota", "Ford", "Hyundai", "Volkswagen", "Tesla", "Peugeot", "Chery", "Fiat", "Tata", "Holden"}
	models  = []string{"Prius", "Mustang", "Tucson", "Passat", "S", "205", "S22L", "Punto", "Nano", "Barina"}
	colours = []string{"blue", "red", "green", "yellow", "black", "purple", "white", "violet", "indigo", "brown"}
	owners  = []string{"Tomoko", "Brad", "Jin Soo", "Max", "Adriana", "Michel", "Aarav", "Pari", "Valeria", "Shotaro"}
)

// generateCars creates n cars with unique numbers. Numbers are prefixed so a
// run never collides with the demo data.
func generateCars(n int) []model.Car {
	cars := make([]model.Car, n)
	for i := range cars {
		id := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
		cars[i] = model.Car{
			CarNumber: "SMOKE" + strings.ToUpper(id),
			Make:      makes[i%len(makes)],
			Model:     models[i%len(models)],
			Colour:    colours[i%len(colours)],
			Owner:     owners[i%len(owners)],
		}
	}
	return cars
}
