package repository

import "github.com/tu-usuario/warehouse-api/internal/domain/entity"

// TransferRepository define el puerto de persistencia para StockTransfer y sus renglones.
type TransferRepository interface {
	Create(transfer *entity.StockTransfer) error
	GetByID(id string) (*entity.StockTransfer, error)
	Update(transfer *entity.StockTransfer) error
	SoftDelete(id string) error
	List() ([]*entity.StockTransfer, error)

	CreateItem(item *entity.StockTransferItem) error
	ListItems(transferID string) ([]*entity.StockTransferItem, error)
}
