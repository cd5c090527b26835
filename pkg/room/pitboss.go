package room

import (
	"sync"

	"github.com/sirupsen/logrus"

	"holdemtable-server/pkg/holdem"
	"holdemtable-server/pkg/player"
)

// PitBoss is responsible for dispatching players to tables
type PitBoss struct {
	registry *player.Registry

	lock   sync.RWMutex
	tables map[string]*Table

	// dealers is only touched from the run loop
	dealers    map[string]*Dealer
	connect    chan *Client
	disconnect chan *Client
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(registry *player.Registry) *PitBoss {
	return &PitBoss{
		registry:   registry,
		tables:     make(map[string]*Table),
		dealers:    make(map[string]*Dealer),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
	}
}

// CreateTable registers a new table
func (p *PitBoss) CreateTable(name string, opts holdem.Options) *Table {
	table := NewTable(name, opts)

	p.lock.Lock()
	p.tables[table.UUID] = table
	p.lock.Unlock()

	return table
}

// Table returns the table with the UUID
func (p *PitBoss) Table(uuid string) (*Table, bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	table, ok := p.tables[uuid]
	return table, ok
}

// Tables returns all registered tables
func (p *PitBoss) Tables() []*Table {
	p.lock.RLock()
	defer p.lock.RUnlock()

	tables := make([]*Table, 0, len(p.tables))
	for _, table := range p.tables {
		tables = append(tables, table)
	}

	return tables
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			logrus.WithField("player", client.String()).Debug("client connected")
			dealer, found := p.dealers[client.table.UUID]
			if !found {
				dealer = NewDealer(p, client.table)
				dealer.StartShift()
				p.dealers[client.table.UUID] = dealer
			}

			dealer.AddClient(client)
		case client := <-p.disconnect:
			logrus.WithField("player", client.String()).Debug("client disconnected")
			dealer, found := p.dealers[client.table.UUID]
			if !found {
				logrus.WithField("uuid", client.table.UUID).Error("table not found")
				continue
			}

			if dealer.RemoveClient(client) {
				dealer.EndShift()
				delete(p.dealers, client.table.UUID)
			}
		}
	}
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}
