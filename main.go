package main

import (
	"oss.terrastruct.com/util-go/xmain"

	"github.com/gmlarumbe/wavedrom-mode/wdcli"
)

func main() {
	xmain.Main(wdcli.Run)
}
