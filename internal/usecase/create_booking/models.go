package create_booking

// Source откуда пришла заявка
type Source string

const (
	// SourceCustomer форма клиента: несколько услуг, только будущие слоты
	SourceCustomer Source = "customer"
	// SourceAdmin форма администратора: одна услуга
	SourceAdmin Source = "admin"
)

// Request модель запроса на создание бронирования
type Request struct {
	Source       Source
	CustomerName string
	Contact      string
	ServiceIDs   []string
	Date         string  // Дата визита YYYY-MM-DD
	Time         string  // Время визита HH:MM
	Notes        *string // Заметки (опционально)
}
