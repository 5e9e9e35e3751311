package service

import (
	"github.com/Wyydra/ya-relay/internal/core/domain"
	"github.com/Wyydra/ya-relay/internal/core/port"
	"github.com/samber/lo"
)

// Delivery is one outbound event and the connections it goes to.
type Delivery struct {
	To    []domain.ConnectionID
	Event domain.Event
}

func reply(conn domain.Connection, name domain.EventName, payload any) Delivery {
	return Delivery{
		To:    []domain.ConnectionID{conn.ID},
		Event: domain.NewEvent(name, payload),
	}
}

// fanOut resolves the live connections of users at call time. It returns
// false when none of them is online.
func fanOut(presence port.Presence, name domain.EventName, payload any, users ...domain.UserID) (Delivery, bool) {
	var to []domain.ConnectionID
	for _, u := range lo.Uniq(users) {
		to = append(to, presence.ConnectionsOf(u)...)
	}
	if len(to) == 0 {
		return Delivery{}, false
	}
	return Delivery{To: lo.Uniq(to), Event: domain.NewEvent(name, payload)}, true
}

// fanOutWith is fanOut that always includes the requesting connection, which
// may not be visible in presence yet or any more.
func fanOutWith(presence port.Presence, conn domain.Connection, name domain.EventName, payload any, users ...domain.UserID) Delivery {
	d, ok := fanOut(presence, name, payload, users...)
	if !ok {
		return reply(conn, name, payload)
	}
	if !lo.Contains(d.To, conn.ID) {
		d.To = append([]domain.ConnectionID{conn.ID}, d.To...)
	}
	return d
}
