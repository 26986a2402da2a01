package model

// Regressor predicts a single price for one encoded feature row.
type Regressor interface {
	Predict(features []float64) (float64, error)
	NumFeatures() int
	Kind() string
}
