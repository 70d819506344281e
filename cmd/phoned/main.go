package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	fx "github.com/robotalks/phone.go/pkg/framework"
	"github.com/robotalks/phone.go/pkg/l1"
	env "github.com/robotalks/phone.go/pkg/l1/env/controller"
	"github.com/robotalks/phone.go/pkg/phone"
)

func init() {
	env.SetControllerType("phone", l1.ControllerMeta{Description: "Keypad Phone"})
	env.SetupFlags()
	phone.SetupFlags()
}

func main() {
	flag.Parse()

	conf := phone.MustNewConfig()
	env := env.NewConfig().MustNewEnv()
	ctl := conf.MustNewController(env.Registrar)

	loop := fx.NewLoop()
	loop.Interval = conf.ScanInterval
	loop.Add(env, ctl).RunOrFail()
}
