package eventengine

import (
	"fmt"
	"log"
	"sync"

	"github.com/Ayush-shah-dev/real-estate-backend/internal/eventengine/event"
)

type Publisher interface {
	Publish(event *event.Event) error
}

type Subscriber interface {
	Subscribe(toEventName event.EventName, subscriber *event.Subscriber) error
}

type RegisterPublisher interface {
	Publisher
	RegisterEvents(eventNames ...event.EventName)
}

type SubscribeRegisterPublisher interface {
	Subscriber
	RegisterPublisher
}

type subscribers struct {
	names      []event.SubscriberName
	addressChs []chan<- any
}

type EventEngineConfig struct {
	DoneCh        <-chan struct{}
	InternalSrvWG *sync.WaitGroup
}

// eventEngine is a small in process pub/sub hub. Services register the events
// they emit, event handlers subscribe with a channel, and Publish fans the
// payload out to every subscriber of that event name.
type eventEngine struct {
	*EventEngineConfig

	mu            sync.RWMutex
	eventEngineCh chan *event.Event
	events        map[event.EventName]*subscribers
}

func NewEventEngine(cfg *EventEngineConfig) SubscribeRegisterPublisher {
	if cfg == nil {
		log.Fatalln("'eventEngineConfig' can not be nil")
	}

	if cfg.DoneCh == nil || cfg.InternalSrvWG == nil {
		log.Fatalln("either DoneCh or InternalSrvWG is nil")
	}

	e := &eventEngine{
		EventEngineConfig: cfg,
		events:            make(map[event.EventName]*subscribers, 20),
		eventEngineCh:     make(chan *event.Event, 20),
	}

	e.InternalSrvWG.Add(1)
	go e.listen()

	return e
}

func (e *eventEngine) listen() {
	defer e.InternalSrvWG.Done()

	log.Println("event engine is listening...")

	for {
		select {
		case <-e.DoneCh:
			log.Println("event engine is shutting down")
			close(e.eventEngineCh)

			// drain anything published before shutdown was signalled
			for ev := range e.eventEngineCh {
				e.broadcast(ev)
			}

			e.closeSubscriberChs()
			return

		case ev, isOpened := <-e.eventEngineCh:
			if !isOpened {
				return
			}

			e.broadcast(ev)
		}
	}
}

func (e *eventEngine) broadcast(ev *event.Event) {
	e.mu.RLock()
	subs, exists := e.events[ev.Name]
	e.mu.RUnlock()

	if !exists {
		log.Printf(
			"event '%v' not found. check your event handler",
			ev.Name,
		)
		return
	}

	for i, addressCh := range subs.addressChs {
		if addressCh == nil {
			log.Printf(
				"subscriber '%v' has a nil addressCh. check this event handler's initialization",
				subs.names[i],
			)
			continue
		}

		addressCh <- ev.Payload
	}
}

// RegisterEvents adds the events a publisher can publish to the engine.
//
// IMPORTANT: register an event before publishing or subscribing to it.
func (e *eventEngine) RegisterEvents(eventNames ...event.EventName) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, eventName := range eventNames {
		if _, exists := e.events[eventName]; exists {
			continue
		}

		e.events[eventName] = &subscribers{}
	}

	log.Println("registering events:", eventNames)
}

func (e *eventEngine) Subscribe(toEventName event.EventName, newSubscriber *event.Subscriber) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	subs, ok := e.events[toEventName]
	if !ok {
		return fmt.Errorf(
			"event '%v' not found. make sure the publishing service has called RegisterEvents for it",
			toEventName,
		)
	}

	subs.names = append(subs.names, newSubscriber.Name)
	subs.addressChs = append(subs.addressChs, newSubscriber.AddressCh)

	return nil
}

func (e *eventEngine) Publish(ev *event.Event) error {
	e.mu.RLock()
	_, exists := e.events[ev.Name]
	e.mu.RUnlock()

	if !exists {
		return fmt.Errorf(
			"event '%v' not found. make sure the publishing service has called RegisterEvents for it",
			ev.Name,
		)
	}

	e.eventEngineCh <- ev

	return nil
}

func (e *eventEngine) closeSubscriberChs() {
	e.mu.Lock()
	defer e.mu.Unlock()

	closed := make(map[chan<- any]bool)

	for _, subs := range e.events {
		for _, addressCh := range subs.addressChs {
			if addressCh == nil || closed[addressCh] {
				continue
			}

			close(addressCh)
			closed[addressCh] = true
		}
	}
}
