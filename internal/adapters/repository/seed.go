package repository

import "github.com/okian/fabcar-web/internal/domain/model"

// DemoCars is the fabcar demo data set a fresh ledger starts with.
func DemoCars() []model.Car {
	return []model.Car{
		{CarNumber: "CAR0", Make: "Toyota", Model: "Prius", Colour: "blue", Owner: "Tomoko"},
		{CarNumber: "CAR1", Make: "Ford", Model: "Mustang", Colour: "red", Owner: "Brad"},
		{CarNumber: "CAR2", Make: "Hyundai", Model: "Tucson", Colour: "green", Owner: "Jin Soo"},
		{CarNumber: "CAR3", Make: "Volkswagen", Model: "Passat", Colour: "yellow", Owner: "Max"},
		{CarNumber: "CAR4", Make: "Tesla", Model: "S", Colour: "black", Owner: "Adriana"},
		{CarNumber: "CAR5", Make: "Peugeot", Model: "205", Colour: "purple", Owner: "Michel"},
		{CarNumber: "CAR6", Make: "Chery", Model: "S22L", Colour: "white", Owner: "Aarav"},
		{CarNumber: "CAR7", Make: "Fiat", Model: "Punto", Colour: "violet", Owner: "Pari"},
		{CarNumber: "CAR8", Make: "Tata", Model: "Nano", Colour: "indigo", Owner: "Valeria"},
		{CarNumber: "CAR9", Make: "Holden", Model: "Barina", Colour: "brown", Owner: "Shotaro"},
	}
}
