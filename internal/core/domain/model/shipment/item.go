package shipment

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	MinItemQuantity = 1
	MinItemWeightKg = 0.1
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Category classifies manifest items.
type Category string

const (
	CategoryDocuments   Category = "documents"
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryFood        Category = "food"
	CategoryFurniture   Category = "furniture"
	CategoryFragile     Category = "fragile"
	CategoryOther       Category = "other"
)

func (c Category) Validate() error {
	switch c {
	case CategoryDocuments, CategoryElectronics, CategoryClothing, CategoryFood,
		CategoryFurniture, CategoryFragile, CategoryOther:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a valid item category", string(c)))
}

// ItemParams is the raw form of a manifest line.
type ItemParams struct {
	Name        string
	Description string
	Quantity    int
	WeightKg    float64
	Value       kernel.Money
	Category    Category
	Fragile     bool
}

// Item is one manifest line. Weight and value are per unit.
type Item struct { //nolint:recvcheck //using for validation
	name        string
	description string
	quantity    int
	weightKg    float64
	value       kernel.Money
	category    Category
	fragile     bool
	guard       guard.ConstructorGuard
}

// NewItem validates a manifest line. index is used only to name the
// offending field, e.g. "items[2].quantity".
func NewItem(index int, p ItemParams) (Item, error) {
	field := func(name string) string { return fmt.Sprintf("items[%d].%s", index, name) }

	var errList []error
	if strings.TrimSpace(p.Name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError(field("name")))
	}
	if p.Quantity < MinItemQuantity {
		errList = append(errList, errs.NewValueIsOutOfRangeError(field("quantity"), p.Quantity, MinItemQuantity, "unbounded"))
	}
	if math.IsNaN(p.WeightKg) || p.WeightKg < MinItemWeightKg {
		errList = append(errList, errs.NewValueIsOutOfRangeError(field("weight"), p.WeightKg, MinItemWeightKg, "unbounded"))
	}
	if err := p.Category.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(field("category"), err))
	}
	if err := p.Value.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause(field("value"), err))
	} else if p.Value.Amount() < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError(field("value"), p.Value.Amount(), 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return Item{}, err
	}

	return Item{
		name:        strings.TrimSpace(p.Name),
		description: p.Description,
		quantity:    p.Quantity,
		weightKg:    p.WeightKg,
		value:       p.Value,
		category:    p.Category,
		fragile:     p.Fragile,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) Name() string        { return i.name }
func (i Item) Description() string { return i.description }
func (i Item) Quantity() int       { return i.quantity }
func (i Item) WeightKg() float64   { return i.weightKg }
func (i Item) Value() kernel.Money { return i.value }
func (i Item) Category() Category  { return i.category }
func (i Item) Fragile() bool       { return i.fragile }

func (i Item) Params() ItemParams {
	return ItemParams{
		Name:        i.name,
		Description: i.description,
		Quantity:    i.quantity,
		WeightKg:    i.weightKg,
		Value:       i.value,
		Category:    i.category,
		Fragile:     i.fragile,
	}
}

// TotalWeightKg is quantity times unit weight.
func (i Item) TotalWeightKg() float64 {
	return float64(i.quantity) * i.weightKg
}

// TotalValue is quantity times unit value.
func (i Item) TotalValue() kernel.Money {
	return i.value.Multiply(int64(i.quantity))
}
