package repository

import "github.com/tu-usuario/warehouse-api/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para Purchase y sus renglones.
// La creación compra+renglones debe ocurrir bajo una misma transacción (TxRunner).
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	Update(purchase *entity.Purchase) error
	SoftDelete(id string) error
	List() ([]*entity.Purchase, error)

	CreateItem(item *entity.PurchaseItem) error
	GetItemByID(id string) (*entity.PurchaseItem, error)
	UpdateItem(item *entity.PurchaseItem) error
	ListItems(purchaseID string) ([]*entity.PurchaseItem, error)
	ListAllItems() ([]*entity.PurchaseItem, error)
}
