package entity

import "time"

// StockMovement registro append-only del libro de deltas de stock.
// Un renglón por ítem-evento: positivo entrada, negativo salida.
// La eliminación de un traslado inserta deltas compensatorios con Reversal=true;
// nunca se borran ni se editan filas de este libro.
type StockMovement struct {
	ID         string
	TransferID string
	ProductID  string
	Quantity   int64 // delta con signo
	Reversal   bool
	CreatedAt  time.Time
}
