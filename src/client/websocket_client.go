package client

import (
	"log"
	"time"

	"github.com/gorilla/websocket"
)

// Listen connects to a market data stream and pipes raw frames into
// the channel, reconnecting after any read failure.
func Listen(address string, eventChannel chan<- []byte, connectionId int64) *websocket.Conn {
	connection, _, err := websocket.DefaultDialer.Dial(address, nil)
	if err != nil {
		log.Printf("Aster [err_1] WS Events [%s]: %s, wait and reconnect...", address, err.Error())
		time.Sleep(time.Second * 3)
		connectionId++

		return Listen(address, eventChannel, connectionId)
	}

	go func() {
		for {
			_, message, err := connection.ReadMessage()
			if err != nil {
				log.Printf("Aster [err_2] WS Events, read [%s]: %s", address, err.Error())

				_ = connection.Close()
				log.Printf("Aster [err_2] WS Events, wait and reconnect...")
				time.Sleep(time.Second * 3)
				connectionId++
				Listen(address, eventChannel, connectionId)
				return
			}

			eventChannel <- message
		}
	}()

	return connection
}
