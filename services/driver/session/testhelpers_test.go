package session

import (
	"sync"
	"time"

	"github.com/piresc/ojekdriver/internal/pkg/models"
)

var fixedNow = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func testOptions() Options {
	return Options{
		MinDeposit:  50000,
		PlatformFee: 1000,
		PaymentMethods: []models.PaymentMethod{
			models.PaymentBank,
			models.PaymentCreditCard,
			models.PaymentCrypto,
			models.PaymentPi,
		},
		Now: func() time.Time { return fixedNow },
	}
}

func seedTrips() []models.TripRequest {
	return []models.TripRequest{
		{
			ID:                "TR-1001",
			Passenger:         models.Passenger{Name: "Ahmad Rizki", Rating: 4.8},
			Pickup:            "Jl. Sudirman No. 123, Jakarta Pusat",
			Destination:       "Mall Grand Indonesia, Jakarta",
			EstimatedDistance: "3.2 km",
			EstimatedDuration: "12 menit",
			ProposedFare:      "Rp 25.000",
		},
		{
			ID:                "TR-1002",
			Passenger:         models.Passenger{Name: "Siti Nurhaliza", Rating: 4.9},
			Pickup:            "Stasiun Gambir, Jakarta",
			Destination:       "Bandara Soekarno-Hatta Terminal 3",
			EstimatedDistance: "28.5 km",
			EstimatedDuration: "45 menit",
			ProposedFare:      "Rp 150.000",
		},
	}
}

func upload() models.DocumentUpload {
	return models.DocumentUpload{FileName: "doc.jpg", ContentType: "image/jpeg", Size: 3, Content: []byte("img")}
}

// verifiedSession returns an online, verified session with the seed offers and balance
func verifiedSession(balance int64) *Session {
	s := New("driver-1", testOptions(), nil)
	_, _, _ = s.SelectVehicle(models.VehicleMotorcycle, "Honda", "Vario")
	for _, kind := range models.RequiredDocuments {
		_, _ = s.SubmitDocument(kind, upload())
	}
	_, _ = s.SetPlateNumber("B 1234 XYZ")
	_, _ = s.CompleteOnboarding()
	if balance > 0 {
		_, _ = s.RequestDeposit("tx-seed", models.DepositRequest{Amount: balance, PaymentMethod: models.PaymentBank})
	}
	for _, trip := range seedTrips() {
		_ = s.OfferTrip(trip)
	}
	_, _ = s.GoOnline()
	return s
}

type recordingListener struct {
	mu       sync.Mutex
	reviews  []models.DriverProfile
	deposits []models.Deposit
	notify   chan struct{}
}

func newRecordingListener() *recordingListener {
	return &recordingListener{notify: make(chan struct{}, 8)}
}

func (l *recordingListener) ReviewApproved(driverID string, profile models.DriverProfile) {
	l.mu.Lock()
	l.reviews = append(l.reviews, profile)
	l.mu.Unlock()
	l.notify <- struct{}{}
}

func (l *recordingListener) DepositSettled(deposit models.Deposit) {
	l.mu.Lock()
	l.deposits = append(l.deposits, deposit)
	l.mu.Unlock()
	l.notify <- struct{}{}
}
