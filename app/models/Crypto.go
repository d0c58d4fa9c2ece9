package models

import "time"

// CryptoInfo is one entry of a game's price table.
type CryptoInfo struct {
	Price     float64 `json:"price"`
	BasePrice float64 `json:"basePrice"`
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
}

// PriceHistory is one append-only price record, written once per crypto per
// turn boundary.
type PriceHistory struct {
	Id         int       `json:"id" pg:",pk"`
	GameId     string    `json:"gameId"`
	CryptoKey  string    `json:"crypto"`
	Price      float64   `json:"price"`
	TurnNumber int       `json:"turnNumber" pg:",use_zero"`
	RecordedAt time.Time `json:"recordedAt"`
}

// PriceSeries is the grouped read-side shape of the history, one per crypto.
type PriceSeries struct {
	Name   string       `json:"name"`
	Symbol string       `json:"symbol"`
	Data   []PricePoint `json:"data"`
}

type PricePoint struct {
	Turn      int     `json:"turn"`
	Price     float64 `json:"price"`
	Timestamp string  `json:"timestamp"`
}
