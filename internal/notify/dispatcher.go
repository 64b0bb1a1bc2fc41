package notify

import "log"

// Dispatcher sends mail off the request path. A failed send is logged and
// never surfaces to the caller: a booked appointment stands even when its
// confirmation mail does not go out.
type Dispatcher struct {
	sender Sender
	queue  chan Message
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.sender.Send(msg); err != nil {
			log.Printf("mail error (to=%s): %v", msg.To, err)
		}
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	if d == nil {
		return
	}
	select {
	case d.queue <- msg:
	default:
		log.Println("mail queue full, dropping message")
	}
}
