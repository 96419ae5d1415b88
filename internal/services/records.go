package services

import (
	"empiria-profile/models"

	"github.com/pocketbase/pocketbase/core"
)

// UserFromRecord maps an auth record to the profile model. Malformed
// JSON blobs degrade to defaults instead of failing the request.
func UserFromRecord(record *core.Record) *models.User {
	user := &models.User{
		ID:              record.Id,
		Auth0ID:         record.GetString("auth0_id"),
		Email:           record.GetString("email"),
		FullName:        record.GetString("full_name"),
		Phone:           record.GetString("phone"),
		AvatarURL:       record.GetString("avatar_url"),
		Role:            record.GetString("role"),
		DefaultCurrency: record.GetString("default_currency"),
		CreatedAt:       record.GetDateTime("created").Time(),
		UpdatedAt:       record.GetDateTime("updated").Time(),
	}

	settings := models.DefaultSettings()
	if err := record.UnmarshalJSONField("settings", &settings); err != nil {
		settings = models.DefaultSettings()
	}
	user.Settings = settings

	var interests []string
	if err := record.UnmarshalJSONField("interests", &interests); err == nil {
		user.Interests = interests
	}

	if user.DefaultCurrency == "" {
		user.DefaultCurrency = "CAD"
	}
	return user
}

func eventFromRecord(record *core.Record) *models.Event {
	if record == nil {
		return nil
	}
	return &models.Event{
		ID:            record.Id,
		Title:         record.GetString("title"),
		Slug:          record.GetString("slug"),
		Description:   record.GetString("description"),
		CoverImageURL: record.GetString("cover_image_url"),
		StartAt:       record.GetDateTime("start_at").Time(),
		EndAt:         record.GetDateTime("end_at").Time(),
		LocationType:  record.GetString("location_type"),
		VenueName:     record.GetString("venue_name"),
		AddressText:   record.GetString("address_text"),
		City:          record.GetString("city"),
		Status:        record.GetString("status"),
		Currency:      record.GetString("currency"),
	}
}

func tierFromRecord(record *core.Record) *models.TicketTier {
	if record == nil {
		return nil
	}
	return &models.TicketTier{
		ID:       record.Id,
		EventID:  record.GetString("event_id"),
		Name:     record.GetString("name"),
		Price:    record.GetFloat("price"),
		Currency: record.GetString("currency"),
	}
}

func ticketFromRecord(record *core.Record) models.Ticket {
	return models.Ticket{
		ID:           record.Id,
		EventID:      record.GetString("event_id"),
		TierID:       record.GetString("tier_id"),
		OrderID:      record.GetString("order_id"),
		UserID:       record.GetString("user_id"),
		QRCodeSecret: record.GetString("qr_code_secret"),
		Status:       record.GetString("status"),
		SeatLabel:    record.GetString("seat_label"),
		PurchaseDate: record.GetDateTime("purchase_date").Time(),
		Event:        eventFromRecord(record.ExpandedOne("event_id")),
		Tier:         tierFromRecord(record.ExpandedOne("tier_id")),
	}
}

func orderFromRecord(record *core.Record) models.Order {
	return models.Order{
		ID:          record.Id,
		UserID:      record.GetString("user_id"),
		EventID:     record.GetString("event_id"),
		TotalAmount: record.GetFloat("total_amount"),
		Currency:    record.GetString("currency"),
		Status:      record.GetString("status"),
		CreatedAt:   record.GetDateTime("created").Time(),
		Event:       eventFromRecord(record.ExpandedOne("event_id")),
		Items:       []models.OrderItem{},
	}
}
