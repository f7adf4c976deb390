package arrayutil

import (
	"log"

	"gonum.org/v1/gonum/mat"
)

//EventArray is a positional event table: one row per event, feature columns
//first, then a channel flag column and finally a weight column. The layout
//matches the arrays dumped from the ntuple side, so it must never be
//reordered; callers reach the special columns through the named accessors
//instead of raw indices.
type EventArray struct {
	data *mat.Dense // nil when the array holds no events
	cols int
}

//NewEventArray wraps an event matrix. The matrix needs at least the channel
//and weight columns to qualify as an event table.
func NewEventArray(m *mat.Dense) EventArray {
	if m == nil {
		log.Panic("nil matrix passed to NewEventArray, use Empty for empty tables")
	}
	_, c := m.Dims()
	if c < 2 {
		log.Panicf("an event table needs at least 2 columns, got %d", c)
	}
	return EventArray{data: m, cols: c}
}

//Empty returns an event array with no events but a remembered column count,
//so that the special-column accessors keep working on the result of a
//selection that removed everything.
func Empty(cols int) EventArray {
	if cols < 2 {
		log.Panicf("an event table needs at least 2 columns, got %d", cols)
	}
	return EventArray{data: nil, cols: cols}
}

//Len returns the number of events.
func (a EventArray) Len() int {
	if a.data == nil {
		return 0
	}
	r, _ := a.data.Dims()
	return r
}

//Cols returns the number of columns, special columns included.
func (a EventArray) Cols() int { return a.cols }

//WeightCol returns the index of the weight column.
func (a EventArray) WeightCol() int { return a.cols - 1 }

//ChannelCol returns the index of the channel flag column.
func (a EventArray) ChannelCol() int { return a.cols - 2 }

//NumFeatures returns the number of plain feature columns.
func (a EventArray) NumFeatures() int { return a.cols - 2 }

//At returns the value at row i, column j.
func (a EventArray) At(i, j int) float64 { return a.data.At(i, j) }

//Set writes the value at row i, column j.
func (a EventArray) Set(i, j int, v float64) { a.data.Set(i, j, v) }

//Weight returns the event weight of row i.
func (a EventArray) Weight(i int) float64 { return a.data.At(i, a.WeightCol()) }

//SetWeight overwrites the event weight of row i.
func (a EventArray) SetWeight(i int, v float64) { a.data.Set(i, a.WeightCol(), v) }

//Channel returns the channel flag of row i.
func (a EventArray) Channel(i int) float64 { return a.data.At(i, a.ChannelCol()) }

//Row copies row i into a fresh slice.
func (a EventArray) Row(i int) []float64 {
	return mat.Row(nil, i, a.data)
}

//Column copies column j into a fresh slice. An empty array yields an empty
//slice.
func (a EventArray) Column(j int) []float64 {
	if a.data == nil {
		return nil
	}
	return mat.Col(nil, j, a.data)
}

//Weights copies the weight column.
func (a EventArray) Weights() []float64 { return a.Column(a.WeightCol()) }

//Features returns a view of the plain feature columns. The view aliases the
//receiver's storage, so callers that intend to modify it must Clone first.
func (a EventArray) Features() *mat.Dense {
	if a.data == nil {
		return nil
	}
	r, _ := a.data.Dims()
	return a.data.Slice(0, r, 0, a.NumFeatures()).(*mat.Dense)
}

//Data exposes the backing matrix, nil for an empty array. Needed for npy
//round trips and feature scoring.
func (a EventArray) Data() *mat.Dense { return a.data }

//Clone deep-copies the event array.
func (a EventArray) Clone() EventArray {
	if a.data == nil {
		return a
	}
	return EventArray{data: mat.DenseCopyOf(a.data), cols: a.cols}
}

//selectRows builds a new event array from the given row indices, in the
//given order.
func (a EventArray) selectRows(idx []int) EventArray {
	if len(idx) == 0 {
		return Empty(a.cols)
	}
	out := mat.NewDense(len(idx), a.cols, nil)
	for p, i := range idx {
		for q := 0; q < a.cols; q++ {
			out.Set(p, q, a.data.At(i, q))
		}
	}
	return EventArray{data: out, cols: a.cols}
}
