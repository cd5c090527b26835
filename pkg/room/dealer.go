package room

import (
	"sync"

	"github.com/sirupsen/logrus"

	"holdemtable-server/pkg/holdem"
)

// Dealer runs one table. Its run loop is the single place where the game is
// touched: every inbound action is enqueued and processed to completion, one
// at a time, and the notifications it produced are delivered before the next
// action is taken up. Clients may come and go without touching the game.
type Dealer struct {
	pitBoss *PitBoss
	table   *Table
	game    *holdem.Game
	clients map[*Client]bool
	lock    sync.RWMutex

	execInRunLoop chan func()
	close         chan bool
}

// NewDealer creates a new dealer for the table
// This is called from a blocking state, so it needs to return quickly
func NewDealer(pitBoss *PitBoss, table *Table) *Dealer {
	logger := logrus.WithFields(logrus.Fields{
		"uuid": table.UUID,
		"name": table.Name,
	})

	game := holdem.NewGame(logger, holdem.NewTable(logger, pitBoss.registry, table.Options))

	return &Dealer{
		pitBoss:       pitBoss,
		table:         table,
		game:          game,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	log := logrus.WithFields(logrus.Fields{
		"uuid": d.table.UUID,
		"name": d.table.Name,
	})

	log.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			log.Debug("terminating dealer run loop")
			return
		}
	}
}

// AddClient adds a client and brings it up to date
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.execInRunLoop <- func() {
		client.Send(statusResponse(payloadFor(client, d.game.CurrentStatus())))
	}
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	return nClients == 0
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

// ReceivedMessage is called when a client sends a message to the server.
// The client's identity always comes from the connection, never the payload.
func (d *Dealer) ReceivedMessage(c *Client, msg holdem.ActionMessage) {
	action := holdem.ActionFromMessage(msg)
	action.ClientID = c.playerID
	action.Name = c.name

	d.execInRunLoop <- func() {
		for _, update := range d.game.HandleAction(action) {
			d.deliver(update)
		}
	}
}

// deliver fans one update out to every connected client. A client with a
// unicast payload receives it instead of the broadcast.
// NOTE: must only be called from the run loop
func (d *Dealer) deliver(update holdem.Update) {
	for _, client := range d.Clients() {
		if !client.Send(statusResponse(payloadFor(client, update))) {
			logrus.WithField("client", client.String()).Warn("client send buffer full, dropping update")
		}
	}
}

func payloadFor(client *Client, update holdem.Update) *holdem.Status {
	if status, ok := update.Unicast[client.playerID]; ok {
		return status
	}

	return update.Broadcast
}
