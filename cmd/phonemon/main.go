package main

import (
	"flag"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/robotalks/phone.go/pkg/history"
	"github.com/robotalks/phone.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/phone.go/pkg/l1/msgs"

	_ "github.com/robotalks/phone.go/pkg/phone/msgs"
)

var (
	mqttURL     = "mqtt://localhost:1883/phone/"
	historyFile string
)

func init() {
	if val := os.Getenv("PHONE_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&historyFile, "history", historyFile, "Print the dial history file and exit.")
}

func dumpHistory(path string) {
	records, err := history.ReadFile(path)
	for _, rec := range records {
		log.Println(rec)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	if historyFile != "" {
		dumpHistory(historyFile)
		return
	}

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}

	q.Sub("#", mqtt.Handler(func(topic string, payload []byte) {
		if strings.HasSuffix(topic, "/"+mqtt.TopicMeta) {
			log.Printf("%s: %s", topic, string(payload))
			return
		}
		typed, err := msgs.DecodeTyped(payload)
		if err != nil {
			log.Printf("%s: bad message: %v", topic, err)
			return
		}
		msg, err := typed.Decode()
		if err != nil {
			log.Printf("%s: decode error: (type_id=%x) %v", topic, typed.TypeId, err)
			return
		}
		log.Printf("%s: [%s] %s", topic,
			reflect.Indirect(reflect.ValueOf(msg)).Type().Name(),
			msg.(msgs.SerializableMessage).Serializable().String())
	}))
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}
	<-(chan struct{})(nil)
}
