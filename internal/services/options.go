package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/store/contracts"
	"github.com/light-bringer/storefront-service/internal/app/store/domain"
	"github.com/light-bringer/storefront-service/internal/app/store/queries/list_products"
	"github.com/light-bringer/storefront-service/internal/app/store/queries/stock_report"
	"github.com/light-bringer/storefront-service/internal/app/store/usecases/place_order"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/journal"
	storehttp "github.com/light-bringer/storefront-service/internal/transport/http"
)

// ProductKind selects the product variant a ProductConfig builds.
type ProductKind string

const (
	KindStocked ProductKind = "stocked"
	KindDigital ProductKind = "digital"
	KindLimited ProductKind = "limited"
)

// ProductConfig describes one catalog entry to construct at startup.
// Promotion, Stock and MaxPerOrder are interpreted per variant.
type ProductConfig struct {
	Kind        ProductKind
	Name        string
	Price       domain.Money
	Stock       int64
	MaxPerOrder int64
	Promotion   domain.Promotion
}

// Config holds application configuration for wiring.
type Config struct {
	Products        []ProductConfig
	JournalCapacity int
	Clock           clock.Clock
	Logger          *zap.Logger
}

// ServiceOptions holds all wired dependencies for the application.
type ServiceOptions struct {
	Catalog contracts.Catalog
	Journal *journal.Journal
	Handler *storehttp.Handler
	Logger  *zap.Logger
}

// NewServiceOptions constructs the catalog from the configuration list
// and wires journal, use cases, queries and the HTTP handler around it.
// There is no module-level state: everything hangs off the returned
// container.
func NewServiceOptions(cfg Config) (*ServiceOptions, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewRealClock()
	}

	products := make([]domain.Product, 0, len(cfg.Products))
	for _, pc := range cfg.Products {
		product, err := buildProduct(pc)
		if err != nil {
			return nil, fmt.Errorf("failed to build product %q: %w", pc.Name, err)
		}
		products = append(products, product)
	}

	jrnl := journal.New(cfg.JournalCapacity, clk)
	recorder := domain.EventRecorderFunc(func(e domain.DomainEvent) {
		jrnl.Record(e)
	})

	catalog := domain.NewStore(products, clk, recorder)

	placeOrderUseCase := place_order.NewInteractor(catalog, logger)
	listProductsQuery := list_products.NewQuery(catalog)
	stockReportQuery := stock_report.NewQuery(catalog)

	handler := storehttp.NewHandler(
		placeOrderUseCase,
		listProductsQuery,
		stockReportQuery,
		jrnl,
		logger,
	)

	return &ServiceOptions{
		Catalog: catalog,
		Journal: jrnl,
		Handler: handler,
		Logger:  logger,
	}, nil
}

// Close flushes buffered log entries.
func (s *ServiceOptions) Close() {
	if s.Logger != nil {
		_ = s.Logger.Sync()
	}
}

// buildProduct constructs the configured product variant and attaches
// its promotion, if any.
func buildProduct(pc ProductConfig) (domain.Product, error) {
	var (
		product domain.Product
		err     error
	)

	switch pc.Kind {
	case KindStocked:
		product, err = domain.NewStockedProduct(pc.Name, pc.Price, pc.Stock)
	case KindDigital:
		product, err = domain.NewDigitalProduct(pc.Name, pc.Price)
	case KindLimited:
		product, err = domain.NewLimitedProduct(pc.Name, pc.Price, pc.Stock, pc.MaxPerOrder)
	default:
		return nil, fmt.Errorf("unknown product kind %q", pc.Kind)
	}
	if err != nil {
		return nil, err
	}

	if pc.Promotion != nil {
		product.SetPromotion(pc.Promotion)
	}
	return product, nil
}
