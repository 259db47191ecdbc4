package configurator

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	CfgCommonPrintMemoryInfo    string = "common.PrintMemoryInfo"
	CfgCommonPrintAperturesInfo string = "common.PrintAperturesInfo"
	CfgCommonPrintStatistic     string = "common.PrintStatistic"
	CfgPrintRegionInfo          string = "common.PrintRegionsInfo"

	CfgRendererGeneratePNG   string = "renderer.GeneratePNG"
	CfgRendererOutFile       string = "renderer.OutFile"
	CfgRendererCanvasWidth   string = "renderer.CanvasWidth"
	CfgRendererCanvasHeight  string = "renderer.CanvasHeight"
	CfgRenderDrawContours    string = "renderer.DrawContours"
	CfgRenderDrawMoves       string = "renderer.DrawMoves"
	CfgRenderDrawOnlyRegions string = "renderer.DrawOnlyRegions"

	CfgPlotterOutFile  string = "plotter.OutFile"
	CfgPlotterPenSizes string = "plotter.PenSizes"
	CfgPlotterXRes     string = "plotter.xRes"
	CfgPlotterYRes     string = "plotter.yRes"
)

func SetDefaults(v *viper.Viper) {
	v.SetConfigName("config") // no need to include file extension
	v.AddConfigPath(".")      // set the path of your config file
	v.SetConfigType("toml")

	// diagnostic messages
	v.SetDefault(CfgCommonPrintMemoryInfo, false)
	v.SetDefault(CfgCommonPrintAperturesInfo, true)
	v.SetDefault(CfgCommonPrintStatistic, true)
	v.SetDefault(CfgPrintRegionInfo, false)

	v.SetDefault(CfgRendererGeneratePNG, true)
	v.SetDefault(CfgRendererOutFile, "out.png")
	v.SetDefault(CfgRendererCanvasWidth, 297)
	v.SetDefault(CfgRendererCanvasHeight, 210)
	v.SetDefault(CfgRenderDrawContours, false)
	v.SetDefault(CfgRenderDrawMoves, false)
	v.SetDefault(CfgRenderDrawOnlyRegions, false)

	v.SetDefault(CfgPlotterOutFile, "out.plt")
	v.SetDefault(CfgPlotterPenSizes, []float64{0.07, 0.07, 0.07, 0.00})
	v.SetDefault(CfgPlotterXRes, 0.025)
	v.SetDefault(CfgPlotterYRes, 0.025)
}

func ProcessConfigFile(v *viper.Viper) error {
	return v.ReadInConfig()
}

func DiagnosticAllCfgPrint(v *viper.Viper) {
	c := v.AllSettings()
	for key, data := range c {
		fmt.Println(key, ":", data)
	}
	fmt.Println()
}
