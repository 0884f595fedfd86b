package tracking

// Courier is a delivery driver from the fixed roster.
type Courier struct {
	Name   string  `json:"name"`
	Photo  string  `json:"photo"`
	Rating float64 `json:"rating"`
	Phone  string  `json:"phone"`
}

// The roster is fixed so courier assignment can be derived instead of stored.
var couriers = []Courier{
	{Name: "Mohammed Jassim", Photo: "https://i.pravatar.cc/150?u=jassim", Rating: 4.9, Phone: "07701234567"},
	{Name: "Ali Sattar", Photo: "https://i.pravatar.cc/150?u=ali", Rating: 4.8, Phone: "07809876543"},
	{Name: "Karrar Nasser", Photo: "https://i.pravatar.cc/150?u=karrar", Rating: 4.7, Phone: "07501112233"},
}

// CourierFor deterministically assigns a courier from the roster based on the
// order id length, so the same order always shows the same courier without
// persisting the assignment.
func CourierFor(orderID string) Courier {
	return couriers[len(orderID)%len(couriers)]
}
