package commands_test

import (
	"context"

	"instagrow/internal/core/application/usecases/commands"
	"instagrow/internal/core/domain/model/catalog"
	"instagrow/internal/core/domain/model/kernel"
	"instagrow/internal/core/domain/model/order"
	"instagrow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(
	ctx context.Context, o *order.Order, expected order.Status,
) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *catalog.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, p *catalog.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Package), args.Error(1)
}

func (m *MockPackageRepository) GetAll(ctx context.Context) ([]*catalog.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Package), args.Error(1)
}

func (m *MockPackageRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPackageUoWFactory struct{ mock.Mock }

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}

type MockPaymentReferenceGenerator struct{ mock.Mock }

func (m *MockPaymentReferenceGenerator) Generate(
	ctx context.Context, draft ports.PaymentDraft,
) (ports.PaymentReference, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(ports.PaymentReference), args.Error(1)
}

func newTestPackage(priceCents int64) *catalog.Package {
	p, err := catalog.NewPackage(
		kernel.NewUUID(),
		"500 Seguidores", "Mais popular! 500 seguidores brasileiros ativos.",
		catalog.Followers, 500, kernel.NewMoneyFromCents(priceCents), "2-6 horas", true,
	)
	if err != nil {
		panic(err)
	}
	return p
}

func newTestOrder(packageID kernel.UUID, status order.Status) *order.Order {
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"Maria Silva", "maria@example.com", "+55 11 91234-5678", "maria",
		packageID, "500 Seguidores", 500, kernel.NewMoneyFromCents(2990),
		"pix-code", "qr", "a1b2c3d4",
	)
	if err != nil {
		panic(err)
	}
	for _, step := range statusPath(status) {
		if err := o.ChangeStatus(step); err != nil {
			panic(err)
		}
	}
	return o
}

// statusPath returns the legal transition chain from Pending to target.
func statusPath(target order.Status) []order.Status {
	switch target {
	case order.Paid:
		return []order.Status{order.Paid}
	case order.Processing:
		return []order.Status{order.Paid, order.Processing}
	case order.Completed:
		return []order.Status{order.Paid, order.Processing, order.Completed}
	case order.Cancelled:
		return []order.Status{order.Cancelled}
	default:
		return nil
	}
}
