package seed

import "github.com/m04kA/parlourease/internal/domain"

const (
	demoServiceName  = "Demo Service"
	demoCustomerName = "Demo Customer"
)

var initialServices = []domain.Service{
	{Name: "Haircut & Style", Price: 50, DurationMinutes: 60, Icon: domain.IconScissors},
	{Name: "Manicure", Price: 35, DurationMinutes: 45, Icon: domain.IconHand},
	{Name: "Pedicure", Price: 45, DurationMinutes: 50, Icon: domain.IconFootprints},
	{Name: "Facial", Price: 75, DurationMinutes: 75, Icon: domain.IconSparkles},
	{Name: "Bridal Makeup", Price: 200, DurationMinutes: 120, Icon: domain.IconGem},
}

var demoService = domain.Service{Name: demoServiceName, Price: 99, DurationMinutes: 45, Icon: domain.IconScissors}

// seedBooking бронирование на сегодня; услуга ищется по названию
type seedBooking struct {
	customerName string
	contact      string
	serviceName  string
	hour, minute int
	status       domain.BookingStatus
	notes        string
}

var initialBookings = []seedBooking{
	{
		customerName: "Alice Johnson",
		contact:      "123-456-7890",
		serviceName:  "Haircut & Style",
		hour:         10,
		status:       domain.StatusPending,
		notes:        "Prefers gentle shampoo.",
	},
	{
		customerName: "Brenda Smith",
		contact:      "234-567-8901",
		serviceName:  "Manicure",
		hour:         11,
		minute:       30,
		status:       domain.StatusInProgress,
	},
}

var demoBooking = seedBooking{
	customerName: demoCustomerName,
	contact:      "123-456-7890",
	serviceName:  demoServiceName,
	hour:         15,
	status:       domain.StatusPending,
	notes:        "Created by live demo.",
}
