package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/owlpinetech/geokit"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version is the version of the geokit command.
const Version = "0.1.0"

// app holds the configuration and logger shared by the commands of one invocation.
type app struct {
	Cfg  *viper.Viper
	Log  *logrus.Logger
	Root *cobra.Command
}

type option struct {
	name, shorthand, usage string
	defaultVal             interface{}
}

var options = []option{
	{
		name: "datum",
		usage: `
              datum is the name of the reference ellipsoid used for conversions.
              Run 'geokit datums' for the list of names.`,
		defaultVal: "WGS-84",
	},
	{
		name:      "precision",
		shorthand: "p",
		usage: `
              precision is the number of decimals printed for coordinates in meters.
              Coordinates in degrees get six more.`,
		defaultVal: 3,
	},
	{
		name:      "verbose",
		shorthand: "v",
		usage: `
              verbose turns on debug logging to standard error.`,
		defaultVal: false,
	},
}

func newApp() *app {
	a := &app{
		Cfg: viper.New(),
		Log: logrus.New(),
	}
	a.Root = &cobra.Command{
		Use:   "geokit",
		Short: "Geodetic coordinate conversions.",
		Long: `geokit converts latitude / longitude positions to and from Universal
Transverse Mercator coordinates, and prints tile zoom level scales.

Configuration can be changed with command-line flags or by setting environment
variables in the format 'GEOKIT_var' where 'var' is the name of the flag, for
example GEOKIT_DATUM=clarke-1866.`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.Log.SetOutput(cmd.ErrOrStderr())
			if a.Cfg.GetBool("verbose") {
				a.Log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
	}

	// Set the prefix for configuration environment variables.
	a.Cfg.SetEnvPrefix("GEOKIT")
	a.Cfg.AutomaticEnv()

	set := a.Root.PersistentFlags()
	for _, option := range options {
		switch option.defaultVal.(type) {
		case string:
			set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
		case int:
			set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
		case bool:
			set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
		default:
			panic("invalid argument type")
		}
		if err := a.Cfg.BindPFlag(option.name, set.Lookup(option.name)); err != nil {
			panic(err)
		}
	}

	a.Root.AddCommand(a.versionCmd(), a.utmCmd(), a.latlonCmd(), a.zoomCmd(), a.datumsCmd())
	return a
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  "version prints the version number of this version of geokit.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "geokit v%s\n", Version)
		},
		DisableAutoGenTag: true,
	}
}

func (a *app) utmCmd() *cobra.Command {
	var zone zoneValue
	cmd := &cobra.Command{
		Use:   "utm [--zone ZONE] LAT LON",
		Short: "Convert a latitude and longitude to UTM",
		Long: `utm converts a latitude and longitude, in degrees, to the zone, easting and
northing of the UTM zone containing it, or of the zone given with --zone.
A negative latitude must follow '--', as in 'geokit utm -- -33.9 18.4'.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gd, err := a.datum()
			if err != nil {
				return err
			}
			lat, err := cast.ToFloat64E(args[0])
			if err != nil {
				return fmt.Errorf("geokit: invalid latitude %q: %v", args[0], err)
			}
			lon, err := cast.ToFloat64E(args[1])
			if err != nil {
				return fmt.Errorf("geokit: invalid longitude %q: %v", args[1], err)
			}
			pos := geokit.NewPosition(lat, lon)
			utm := geokit.ConvertToUTM(gd, pos)
			if zone.set {
				utm = geokit.ConvertToUTMZone(gd, pos, zone.zone)
			}
			a.Log.WithFields(logrus.Fields{
				"datum":     a.Cfg.GetString("datum"),
				"latitude":  lat,
				"longitude": lon,
				"zone":      utm.Zone().String(),
				"forced":    zone.set,
			}).Debug("converted position to UTM")

			prec := a.precision()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %.*f %.*f\n", utm.Zone(), prec, utm.Easting(), prec, utm.Northing())
			return err
		},
		DisableAutoGenTag: true,
	}
	cmd.Flags().Var(&zone, "zone", "project into this zone, such as 14N, instead of the zone containing the position")
	// everything after the latitude is positional, so a negative longitude is not a flag
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) latlonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latlon ZONE EASTING NORTHING",
		Short: "Convert UTM coordinates to latitude and longitude",
		Long: `latlon converts a UTM zone (such as 15N), easting and northing, in meters, to
latitude and longitude in degrees. The datum must be the one the UTM
coordinates were produced with.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			gd, err := a.datum()
			if err != nil {
				return err
			}
			utm, err := geokit.ParseUTMPosition(strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("geokit: %v", err)
			}
			pos := utm.Position(gd)
			a.Log.WithFields(logrus.Fields{
				"datum":    a.Cfg.GetString("datum"),
				"zone":     utm.Zone().String(),
				"easting":  utm.Easting(),
				"northing": utm.Northing(),
			}).Debug("converted UTM to position")

			prec := a.precision() + 6
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.*f %.*f\n", prec, pos.Latitude, prec, pos.Longitude)
			return err
		},
		DisableAutoGenTag: true,
	}
}

func (a *app) zoomCmd() *cobra.Command {
	var scale float64
	cmd := &cobra.Command{
		Use:   "zoom [--scale METERS] [LEVEL]",
		Short: "Print tile zoom level scales",
		Long: `zoom prints the number of pixels along each axis of the whole planet and the
size of a pixel at the equator, in meters, for one zoom level or for all of them.
With --scale it prints the least zoomed in level with pixels no larger than
the given size.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			levels := geokit.ZoomLevels()
			if cmd.Flags().Changed("scale") {
				if len(args) == 1 {
					return fmt.Errorf("geokit: give either a zoom level or --scale, not both")
				}
				zl, ok := geokit.ZoomLevelForScale(scale)
				if !ok {
					return fmt.Errorf("geokit: no zoom level has pixels of %g m or smaller", scale)
				}
				a.Log.WithFields(logrus.Fields{
					"scale": scale,
					"level": zl.Ordinal(),
				}).Debug("selected zoom level for scale")
				levels = levels[zl.Ordinal() : zl.Ordinal()+1]
			} else if len(args) == 1 {
				o, err := cast.ToIntE(args[0])
				if err != nil {
					return fmt.Errorf("geokit: invalid zoom level %q: %v", args[0], err)
				}
				zl, ok := geokit.ZoomLevelFromOrdinal(o)
				if !ok {
					return fmt.Errorf("geokit: no zoom level %d", o)
				}
				levels = levels[zl.Ordinal() : zl.Ordinal()+1]
			}
			return writeZoomLevels(cmd.OutOrStdout(), levels)
		},
		DisableAutoGenTag: true,
	}
	cmd.Flags().Float64Var(&scale, "scale", 0, "pick the level for this pixel size at the equator, in meters")
	return cmd
}

func writeZoomLevels(w io.Writer, levels []geokit.ZoomLevel) error {
	for _, zl := range levels {
		if _, err := fmt.Fprintf(w, "%2d %10d %14.6f\n", zl.Ordinal(), zl.Pixels(), zl.Scale()); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) datumsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datums",
		Short: "List the datum catalog",
		Long: `datums lists the names accepted by the --datum flag, with the equatorial and
polar radii in meters and the eccentricity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range geokit.DatumNames() {
				gd, err := geokit.DatumByName(name)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-20s %12.4f %12.4f %.12f\n",
					name, gd.EquatorialRadius(), gd.PolarRadius(), gd.Eccentricity()); err != nil {
					return err
				}
			}
			return nil
		},
		DisableAutoGenTag: true,
	}
}

// datum looks up the configured datum in the catalog.
func (a *app) datum() (geokit.GeodeticDatum, error) {
	name := a.Cfg.GetString("datum")
	gd, err := geokit.DatumByName(name)
	if err != nil {
		return gd, fmt.Errorf("geokit: %v", err)
	}
	return gd, nil
}

func (a *app) precision() int {
	prec := a.Cfg.GetInt("precision")
	if prec < 0 {
		a.Log.WithField("precision", prec).Warn("negative precision, using 0")
		return 0
	}
	return prec
}

var _ pflag.Value = (*zoneValue)(nil)

// zoneValue is a pflag.Value holding a UTM zone.
type zoneValue struct {
	zone geokit.UTMZone
	set  bool
}

func (z *zoneValue) String() string {
	if !z.set {
		return ""
	}
	return z.zone.String()
}

func (z *zoneValue) Set(s string) error {
	zone, err := geokit.ParseUTMZone(s)
	if err != nil {
		return err
	}
	z.zone = zone
	z.set = true
	return nil
}

func (z *zoneValue) Type() string {
	return "zone"
}
