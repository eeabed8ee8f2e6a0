package alerts

import (
	"fmt"
	"log"
	"sync"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/eventengine"
	"github.com/Ayush-shah-dev/real-estate-backend/internal/eventengine/event"
)

// subscriberName is the name of this event handler.
const subscriberName event.SubscriberName = "handler_event.alerts"

type recorder interface {
	record(kind AlertKind, message string)
}

type HandlerEventsConfig struct {
	DoneCh        <-chan struct{}
	InternalSrvWG *sync.WaitGroup
	EventEngine   eventengine.SubscribeRegisterPublisher
	Service       recorder
	AddressChSize uint16
}

type handlerEvent struct {
	*HandlerEventsConfig
	addressCh chan any
}

func NewEventHandler(cfg *HandlerEventsConfig) *handlerEvent {
	if cfg.AddressChSize == 0 {
		cfg.AddressChSize = 10
	}

	if cfg.DoneCh == nil || cfg.InternalSrvWG == nil || cfg.EventEngine == nil || cfg.Service == nil {
		log.Fatalf(
			"either 'DoneCh', 'EventEngine', 'InternalSrvWG' or 'Service' is nil in '%s'",
			subscriberName,
		)
	}

	he := &handlerEvent{
		HandlerEventsConfig: cfg,
		addressCh:           make(chan any, cfg.AddressChSize),
	}

	he.InternalSrvWG.Add(1)
	go he.listen()

	return he
}

func (h *handlerEvent) listen() {
	defer h.InternalSrvWG.Done()

	h.addSubscriptions()

	log.Printf("%s is listening...\n", subscriberName)

	for newEvent := range h.addressCh {
		switch ne := newEvent.(type) {
		case *event.OrderCreatedEvent:
			h.orderCreatedEventHandler(ne)

		case *event.StockLowEvent:
			h.stockLowEventHandler(ne)

		default:
			log.Printf(
				"received unknown event type: %T\n",
				ne,
			)
		}
	}

	log.Printf("shutting down %s\n", subscriberName)
}

func (h *handlerEvent) orderCreatedEventHandler(newEvent *event.OrderCreatedEvent) {
	msg := fmt.Sprintf(
		"order %s created with %d item(s) totalling %.2f",
		newEvent.OrderID,
		newEvent.ItemCount,
		newEvent.TotalAmount,
	)

	h.Service.record(AlertKindOrderCreated, msg)
	log.Println(msg)
}

func (h *handlerEvent) stockLowEventHandler(newEvent *event.StockLowEvent) {
	msg := fmt.Sprintf(
		"stock for '%s' is low: %d unit(s) remaining",
		newEvent.ProductName,
		newEvent.Quantity,
	)

	h.Service.record(AlertKindStockLow, msg)
	log.Println(msg)
}

// addSubscriptions subscribes addressCh to every event this handler
// turns into an alert.
func (h *handlerEvent) addSubscriptions() {
	subscribeToEventNames := [2]event.EventName{
		event.OrderCreatedEventName,
		event.StockLowEventName,
	}

	var err error
	for _, v := range subscribeToEventNames {
		err = h.EventEngine.Subscribe(
			v,
			&event.Subscriber{
				Name:      subscriberName,
				AddressCh: h.addressCh,
			},
		)
		if err != nil {
			log.Fatalf(
				"error in Subscriber: '%s' \nerror subscribing to events: %v\n",
				subscriberName,
				err,
			)
		}
	}
}
