package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xperh004/air-quality-monitoring-prague/internal/monitor"
	"github.com/xperh004/air-quality-monitoring-prague/pkg/airquality"
	"github.com/xperh004/air-quality-monitoring-prague/pkg/device"
)

var monitorCmd = &cobra.Command{
	Use:          "monitor",
	Short:        "Capture readings until interrupted",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var source monitor.LineSource
		if !viper.GetBool("simulation") {
			conn, err := device.Open(device.Config{
				Port: viper.GetString("device.port"),
				Baud: viper.GetInt("device.baud"),
			})
			switch {
			case errors.Is(err, device.ErrUnavailable):
				// Run the whole session on synthetic readings instead.
				logger.LogAttrs(nil, slog.LevelInfo, "Device unavailable, falling back to simulation",
					slog.String("port", viper.GetString("device.port")),
					slog.Any("error", err))
			case err != nil:
				return err
			default:
				defer conn.Close()
				source = conn
			}
		}

		m := monitor.New(monitor.Config{
			Source:   source,
			Limits:   limitsFromConfig(),
			LogPath:  viper.GetString("log.file"),
			Interval: viper.GetDuration("interval"),
			Out:      os.Stdout,
			Logger:   logger,
		})

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		return m.Run(ctx)
	},
}

func init() {
	monitorCmd.Flags().Bool("simulation", true, "generate synthetic readings instead of opening the device")
	monitorCmd.Flags().String("device.port", "", "serial port of the sensor board")
	monitorCmd.Flags().Int("device.baud", 0, "serial baud rate")
	monitorCmd.Flags().Duration("interval", 0, "delay between readings")
	monitorCmd.Flags().String("log.file", "", "CSV log file path")
	monitorCmd.Flags().Float64("limits.pm25.max", 0, "PM2.5 guideline µg/m³")
	monitorCmd.Flags().Float64("limits.pm10.max", 0, "PM10 guideline µg/m³")
	monitorCmd.Flags().Float64("limits.co2.max", 0, "CO2 comfort level ppm")
	monitorCmd.Flags().Float64("limits.temp.min", 0, "lowest plausible temperature °C")
	monitorCmd.Flags().Float64("limits.temp.max", 0, "highest plausible temperature °C")
	monitorCmd.Flags().Float64("limits.hum.min", 0, "lowest comfortable humidity %")
	monitorCmd.Flags().Float64("limits.hum.max", 0, "highest comfortable humidity %")

	cobra.CheckErr(viper.BindPFlags(monitorCmd.Flags()))

	viper.SetDefault("device.port", "/dev/ttyUSB0")
	viper.SetDefault("device.baud", 9600)
	viper.SetDefault("interval", "1s")
	viper.SetDefault("log.file", "air_quality_log.csv")
	viper.SetDefault("limits.pm25.max", airquality.DefaultLimits.PM25Max)
	viper.SetDefault("limits.pm10.max", airquality.DefaultLimits.PM10Max)
	viper.SetDefault("limits.co2.max", airquality.DefaultLimits.CO2Max)
	viper.SetDefault("limits.temp.min", airquality.DefaultLimits.TempMin)
	viper.SetDefault("limits.temp.max", airquality.DefaultLimits.TempMax)
	viper.SetDefault("limits.hum.min", airquality.DefaultLimits.HumMin)
	viper.SetDefault("limits.hum.max", airquality.DefaultLimits.HumMax)

	rootCmd.AddCommand(monitorCmd)
}

// limitsFromConfig materializes the guideline constants from viper into an
// explicit value shared by the monitor and report commands.
func limitsFromConfig() airquality.Limits {
	return airquality.Limits{
		PM25Max: viper.GetFloat64("limits.pm25.max"),
		PM10Max: viper.GetFloat64("limits.pm10.max"),
		CO2Max:  viper.GetFloat64("limits.co2.max"),
		TempMin: viper.GetFloat64("limits.temp.min"),
		TempMax: viper.GetFloat64("limits.temp.max"),
		HumMin:  viper.GetFloat64("limits.hum.min"),
		HumMax:  viper.GetFloat64("limits.hum.max"),
	}
}
