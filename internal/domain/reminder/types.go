package reminder

// Category distinguishes what the reminder is chasing.
type Category string

const (
	CategoryFollowup Category = "followup"
	CategoryPayment  Category = "payment"
)

// Channel is the delivery hint chosen in the dashboard. The dispatcher only
// surfaces it in the owner notice; WhatsApp delivery itself is copy-and-send.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelEmail    Channel = "email"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
)

// MaxMessageLength mirrors the dashboard's form validation. The dispatcher
// never writes the message; the bound exists for defensive checks on load.
const MaxMessageLength = 1000

// DeliveryState makes the two-timestamp lattice explicit: which of the two
// notifications have ever succeeded for a reminder.
type DeliveryState int

const (
	// DeliveryNone: neither the owner nor the client has been reached.
	DeliveryNone DeliveryState = iota
	// DeliveryOwnerOnly: owner notified, client email still outstanding or n/a.
	DeliveryOwnerOnly
	// DeliveryClientOnly: client emailed but the owner notice failed earlier.
	DeliveryClientOnly
	// DeliveryBoth: both notifications succeeded at some point.
	DeliveryBoth
)

func (s DeliveryState) String() string {
	switch s {
	case DeliveryNone:
		return "none"
	case DeliveryOwnerOnly:
		return "owner_only"
	case DeliveryClientOnly:
		return "client_only"
	case DeliveryBoth:
		return "both"
	default:
		return "unknown"
	}
}
