package commands_test

import (
	"context"
	"io"

	"pipeyard/internal/core/application/usecases/commands"
	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/load"
	"pipeyard/internal/core/domain/model/request"
	"pipeyard/internal/core/domain/model/shipment"
	"pipeyard/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, req *request.StorageRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockRequestRepository) Update(ctx context.Context, req *request.StorageRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.StorageRequest, error) {
	args := m.Called(ctx, id)
	if req, ok := args.Get(0).(*request.StorageRequest); ok {
		return req, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, ld *load.TruckingLoad) error {
	args := m.Called(ctx, ld)
	return args.Error(0)
}

func (m *MockLoadRepository) Update(ctx context.Context, ld *load.TruckingLoad) error {
	args := m.Called(ctx, ld)
	return args.Error(0)
}

func (m *MockLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.TruckingLoad, error) {
	args := m.Called(ctx, id)
	if ld, ok := args.Get(0).(*load.TruckingLoad); ok {
		return ld, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoadRepository) GetByRequest(ctx context.Context, requestID kernel.UUID) ([]*load.TruckingLoad, error) {
	args := m.Called(ctx, requestID)
	if loads, ok := args.Get(0).([]*load.TruckingLoad); ok {
		return loads, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoadRepository) NextSequence(ctx context.Context, requestID kernel.UUID, direction load.Direction) (int, error) {
	args := m.Called(ctx, requestID, direction)
	return args.Int(0), args.Error(1)
}

func (m *MockLoadRepository) ExistsAtSequence(ctx context.Context, requestID kernel.UUID, direction load.Direction, sequence int) (bool, error) {
	args := m.Called(ctx, requestID, direction, sequence)
	return args.Bool(0), args.Error(1)
}

func (m *MockLoadRepository) AddDocument(ctx context.Context, doc *load.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockLoadRepository) UpdateDocument(ctx context.Context, doc *load.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockLoadRepository) GetUnparsedDocuments(ctx context.Context) ([]*load.Document, error) {
	args := m.Called(ctx)
	if docs, ok := args.Get(0).([]*load.Document); ok {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoadRepository) AttachPendingDocuments(ctx context.Context, requestID kernel.UUID, loadID kernel.UUID) (int, error) {
	args := m.Called(ctx, requestID, loadID)
	return args.Int(0), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) AddShipment(ctx context.Context, ship *shipment.Shipment) error {
	args := m.Called(ctx, ship)
	return args.Error(0)
}

func (m *MockShipmentRepository) AddTruck(ctx context.Context, truck *shipment.ShipmentTruck) error {
	args := m.Called(ctx, truck)
	return args.Error(0)
}

func (m *MockShipmentRepository) AddAppointment(ctx context.Context, appointment *shipment.DockAppointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockShipmentRepository) GetAppointmentByShipment(ctx context.Context, shipmentID kernel.UUID) (*shipment.DockAppointment, error) {
	args := m.Called(ctx, shipmentID)
	if appointment, ok := args.Get(0).(*shipment.DockAppointment); ok {
		return appointment, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShipmentRepository) DeleteShipment(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShipmentRepository) DeleteTruck(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShipmentRepository) DeleteAppointment(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShipmentRepository) LinkShipmentToLoad(ctx context.Context, shipmentID kernel.UUID, loadID kernel.UUID) error {
	args := m.Called(ctx, shipmentID, loadID)
	return args.Error(0)
}

func (m *MockShipmentRepository) LinkTruckToLoad(ctx context.Context, truckID kernel.UUID, loadID kernel.UUID) error {
	args := m.Called(ctx, truckID, loadID)
	return args.Error(0)
}

func (m *MockShipmentRepository) LinkAppointmentToLoad(ctx context.Context, appointmentID kernel.UUID, loadID kernel.UUID) error {
	args := m.Called(ctx, appointmentID, loadID)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyLoadScheduled(ctx context.Context, notification ports.BookingNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotifier) NotifyScheduleFallback(ctx context.Context, notification ports.BookingNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type MockDocumentStore struct{ mock.Mock }

func (m *MockDocumentStore) Put(ctx context.Context, fileName string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, fileName, reader, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentStore) Remove(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

type MockManifestExtractor struct{ mock.Mock }

func (m *MockManifestExtractor) Extract(ctx context.Context, path string) (kernel.Quantity, error) {
	args := m.Called(ctx, path)
	if q, ok := args.Get(0).(kernel.Quantity); ok {
		return q, args.Error(1)
	}
	return kernel.Quantity{}, args.Error(1)
}

type MockRequestUoW struct{ mock.Mock }

func (m *MockRequestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockLoadUoW struct{ mock.Mock }

func (m *MockLoadUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadUoW) LoadRepository() ports.LoadRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadRepository)
}

type MockLoadUoWFactory struct{ mock.Mock }

func (m *MockLoadUoWFactory) Create() commands.LoadUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadUoW)
}

type MockBookingUoW struct{ mock.Mock }

func (m *MockBookingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockBookingUoW) LoadRepository() ports.LoadRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadRepository)
}

func (m *MockBookingUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}
