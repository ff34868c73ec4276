package entity

import "time"

// SessionRecord is the audit entry the session worker stores for each received session event.
// Its document ID is the event ID, so redelivered events overwrite their own record.
type SessionRecord struct {
	EventID    string    `firestore:"eventId" bson:"eventId" json:"eventId"`
	Type       string    `firestore:"type" bson:"type" json:"type"`
	UID        string    `firestore:"uid" bson:"uid" json:"uid"`
	Email      string    `firestore:"email" bson:"email" json:"email"`
	OccurredAt time.Time `firestore:"occurredAt" bson:"occurredAt" json:"occurredAt"`
	ReceivedAt time.Time `firestore:"receivedAt" bson:"receivedAt" json:"receivedAt"`
	RequestID  string    `firestore:"requestId" bson:"requestId" json:"requestId"`
}
