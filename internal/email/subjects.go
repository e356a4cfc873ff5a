package email

const (
	subjectValuationNotificationFmt = "Neue Immobilienbewertung: %s in %s"
)
