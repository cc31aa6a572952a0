// Package model contains domain models passed between layers.
package model

// Car is the flat record used throughout the front end.
type Car struct {
	CarNumber string `json:"carnumber"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Colour    string `json:"colour"`
	Owner     string `json:"owner"`
}

// CarRecord is the bare record the ledger stores under a car number.
type CarRecord struct {
	Make   string `json:"make"`
	Model  string `json:"model"`
	Colour string `json:"colour"`
	Owner  string `json:"owner"`
}

// CarResponse is the ledger's list element: a raw key paired with its record.
type CarResponse struct {
	Key    string    `json:"Key"`
	Record CarRecord `json:"Record"`
}

// ChangeOwnerRequest is the body of a change-owner call.
type ChangeOwnerRequest struct {
	CarNumber string `json:"carnumber"`
	NewOwner  string `json:"newowner"`
}

// Record drops the car number.
func (c Car) Record() CarRecord {
	return CarRecord{
		Make:   c.Make,
		Model:  c.Model,
		Colour: c.Colour,
		Owner:  c.Owner,
	}
}

// FromRecord attaches carNumber to a bare record.
func FromRecord(carNumber string, r CarRecord) Car {
	return Car{
		CarNumber: carNumber,
		Make:      r.Make,
		Model:     r.Model,
		Colour:    r.Colour,
		Owner:     r.Owner,
	}
}

// FromResponse flattens a list element; the key becomes the car number.
func FromResponse(r CarResponse) Car {
	return FromRecord(r.Key, r.Record)
}

// FromResponses flattens a list response preserving order. The result is
// never nil.
func FromResponses(rs []CarResponse) []Car {
	out := make([]Car, len(rs))
	for i, r := range rs {
		out[i] = FromResponse(r)
	}
	return out
}
