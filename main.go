//go:build !(js && wasm)

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/voxelsplace/voxmesh/collide"
	"github.com/voxelsplace/voxmesh/config"
	"github.com/voxelsplace/voxmesh/utils"
)

func usage() {
	fmt.Println("Usage: voxmesh <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  bake input.voxg output.glb [config.yaml]   (surface + collision proxies -> .glb)")
	fmt.Println("  boxes input.voxg <none|exact|half|third|quarter>   (print collision boxes as JSON)")
	fmt.Println("  info input.voxg                            (header, occupancy and digest)")
	fmt.Println("  gennoise <size> <percentage> <translucent%> <amount> <output_dir>   (generate N random .voxg grids)")
}

func fail(err error) {
	fmt.Println("Error:", err)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	logger := log.New(os.Stdout, "[voxmesh] ", log.LstdFlags)

	switch os.Args[1] {
	case "bake":
		if len(os.Args) != 4 && len(os.Args) != 5 {
			usage()
			os.Exit(1)
		}
		var cfgPath string
		if len(os.Args) == 5 {
			cfgPath = os.Args[4]
		}
		cfg, err := config.Load(cfgPath)
		if err != nil {
			fail(err)
		}
		if err := utils.RunBake(os.Args[2], os.Args[3], cfg, logger); err != nil {
			fail(err)
		}
	case "boxes":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		d, err := collide.ParseDetail(os.Args[3])
		if err != nil {
			fail(err)
		}
		if err := utils.RunBoxes(os.Args[2], d, os.Stdout); err != nil {
			fail(err)
		}
		return
	case "info":
		if len(os.Args) != 3 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunInfo(os.Args[2], os.Stdout); err != nil {
			fail(err)
		}
		return
	case "gennoise":
		if len(os.Args) != 7 {
			usage()
			os.Exit(1)
		}
		size, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fail(err)
		}
		var perc, translucent float64
		if _, err := fmt.Sscan(os.Args[3], &perc); err != nil {
			fail(err)
		}
		if _, err := fmt.Sscan(os.Args[4], &translucent); err != nil {
			fail(err)
		}
		amount, err := strconv.Atoi(os.Args[5])
		if err != nil {
			fail(err)
		}
		seed := uint64(time.Now().UnixNano())
		if err := utils.RunGenerateNoise(size, perc, translucent, amount, os.Args[6], seed); err != nil {
			fail(err)
		}
		logger.Printf("generated %d grids in %s", amount, os.Args[6])
	default:
		usage()
		os.Exit(1)
	}

	logger.Println("Operation completed!")
}
