// Package band 配置定义
package band

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Kevin-Rudy/goether/pkg/ether"
	"github.com/Kevin-Rudy/goether/pkg/unit"
	"gopkg.in/yaml.v3"
)

// 时间单位类型
const (
	UnitDate   = "date"
	UnitNumber = "number"
)

// ZoneConfig 热区配置
type ZoneConfig struct {
	Start   string  `yaml:"start"`
	End     string  `yaml:"end"`
	Magnify float64 `yaml:"magnify"`
}

// ZoomStepConfig 缩放步进配置
type ZoomStepConfig struct {
	Unit              string  `yaml:"unit"`
	PixelsPerInterval float64 `yaml:"pixels_per_interval"`
}

// BandConfig 单个band的配置
type BandConfig struct {
	Name              string           `yaml:"name"`
	Unit              string           `yaml:"unit"`          // date 或 number
	Ether             string           `yaml:"ether"`         // linear 或 hot-zone
	IntervalUnit      string           `yaml:"interval_unit"` // 公历单位名，设置后覆盖 interval
	Interval          float64          `yaml:"interval"`
	PixelsPerInterval float64          `yaml:"pixels_per_interval"`
	StartsOn          string           `yaml:"starts_on,omitempty"`
	EndsOn            string           `yaml:"ends_on,omitempty"`
	CentersOn         string           `yaml:"centers_on,omitempty"`
	Zones             []ZoneConfig     `yaml:"zones,omitempty"`
	ZoomSteps         []ZoomStepConfig `yaml:"zoom_steps,omitempty"`
	ZoomIndex         int              `yaml:"zoom_index"`
	Theme             string           `yaml:"theme,omitempty"`
}

// Config 一组band的配置
type Config struct {
	Bands []BandConfig `yaml:"bands"`
}

// DefaultConfig 返回默认配置：以当前时间为中心的日视图与年视图两个band
func DefaultConfig() *Config {
	return &Config{
		Bands: []BandConfig{
			{
				Name:              "days",
				Unit:              UnitDate,
				Ether:             string(ether.KindLinear),
				IntervalUnit:      "day",
				PixelsPerInterval: 100,
				ZoomSteps: []ZoomStepConfig{
					{Unit: "hour", PixelsPerInterval: 40},
					{Unit: "day", PixelsPerInterval: 100},
					{Unit: "week", PixelsPerInterval: 150},
					{Unit: "month", PixelsPerInterval: 200},
				},
				ZoomIndex: 1,
			},
			{
				Name:              "years",
				Unit:              UnitDate,
				Ether:             string(ether.KindLinear),
				IntervalUnit:      "year",
				PixelsPerInterval: 200,
				ZoomSteps: []ZoomStepConfig{
					{Unit: "month", PixelsPerInterval: 60},
					{Unit: "year", PixelsPerInterval: 200},
					{Unit: "decade", PixelsPerInterval: 300},
				},
				ZoomIndex: 1,
			},
		},
	}
}

// LoadConfig 从YAML文件读取配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig 解析YAML配置
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	return &config, nil
}

// WriteConfig 把配置写入YAML文件
func WriteConfig(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate 验证配置的合理性
func (c *Config) Validate() error {
	if len(c.Bands) == 0 {
		return errors.New("至少需要配置一个band")
	}

	names := make(map[string]bool)
	for i := range c.Bands {
		band := &c.Bands[i]
		if err := band.Validate(); err != nil {
			return fmt.Errorf("band %d (%s): %w", i, band.Name, err)
		}
		if names[band.Name] {
			return fmt.Errorf("band名称重复: %s", band.Name)
		}
		names[band.Name] = true
	}
	return nil
}

// Validate 验证单个band配置
func (b *BandConfig) Validate() error {
	if b.Name == "" {
		return errors.New("band名称不能为空")
	}

	switch b.unitKind() {
	case UnitDate, UnitNumber:
	default:
		return fmt.Errorf("未知的时间单位类型: %s", b.Unit)
	}

	switch ether.Kind(b.Ether) {
	case "", ether.KindLinear, ether.KindHotZone:
	default:
		return fmt.Errorf("未知的ether类型: %s", b.Ether)
	}

	if b.IntervalUnit != "" {
		if _, err := unit.ParseUnitName(b.IntervalUnit); err != nil {
			return err
		}
	} else if b.Interval <= 0 {
		return errors.New("interval必须大于0")
	}

	if b.PixelsPerInterval <= 0 {
		return errors.New("pixels_per_interval必须大于0")
	}

	for i, zone := range b.Zones {
		if zone.Magnify <= 0 {
			return fmt.Errorf("热区%d的magnify必须大于0", i)
		}
		if zone.Start == "" || zone.End == "" {
			return fmt.Errorf("热区%d缺少起点或终点", i)
		}
	}

	for i, step := range b.ZoomSteps {
		if _, err := unit.ParseUnitName(step.Unit); err != nil {
			return fmt.Errorf("缩放步进%d: %w", i, err)
		}
		if step.PixelsPerInterval <= 0 {
			return fmt.Errorf("缩放步进%d的pixels_per_interval必须大于0", i)
		}
	}

	if len(b.ZoomSteps) > 0 && (b.ZoomIndex < 0 || b.ZoomIndex >= len(b.ZoomSteps)) {
		return fmt.Errorf("zoom_index %d 超出范围 [0, %d)", b.ZoomIndex, len(b.ZoomSteps))
	}

	return nil
}

// unitKind 返回时间单位类型，默认为日期
func (b *BandConfig) unitKind() string {
	if b.Unit == "" {
		return UnitDate
	}
	return strings.ToLower(b.Unit)
}

// etherParams 把band配置转换为ether参数
func (b *BandConfig) etherParams() (*ether.Params, error) {
	interval := b.Interval
	if b.IntervalUnit != "" {
		id, err := unit.ParseUnitName(b.IntervalUnit)
		if err != nil {
			return nil, err
		}
		interval = unit.GregorianUnitLengths[id]
	}

	opts := []ether.Option{
		ether.WithInterval(interval, b.PixelsPerInterval),
		ether.WithUnitLengths(unit.GregorianUnitLengths),
		ether.WithTheme(b.Theme),
	}
	if b.Ether != "" {
		opts = append(opts, ether.WithKind(ether.Kind(b.Ether)))
	}

	// 空字符串表示未设置该位置指令
	if b.StartsOn != "" {
		opts = append(opts, ether.WithStartsOn(b.StartsOn))
	}
	if b.EndsOn != "" {
		opts = append(opts, ether.WithEndsOn(b.EndsOn))
	}
	if b.CentersOn != "" {
		opts = append(opts, ether.WithCentersOn(b.CentersOn))
	}

	for _, zone := range b.Zones {
		opts = append(opts, ether.WithZone(zone.Start, zone.End, zone.Magnify))
	}

	params := ether.NewParams(opts...)
	// 显式声明 linear 时忽略热区
	if ether.Kind(b.Ether) == ether.KindLinear {
		params.Kind = ether.KindLinear
	}
	return params, nil
}

// zoomSteps 把缩放步进配置转换为ether步进表
func (b *BandConfig) zoomSteps() ([]ether.ZoomStep, error) {
	steps := make([]ether.ZoomStep, 0, len(b.ZoomSteps))
	for _, step := range b.ZoomSteps {
		id, err := unit.ParseUnitName(step.Unit)
		if err != nil {
			return nil, err
		}
		steps = append(steps, ether.ZoomStep{Unit: id, PixelsPerInterval: step.PixelsPerInterval})
	}
	return steps, nil
}

// Build 按配置创建band，pixelLength 为视口宽度
func (b *BandConfig) Build(pixelLength float64, opts ...Option) (Track, error) {
	settings := newSettings(opts...)

	params, err := b.etherParams()
	if err != nil {
		return nil, err
	}
	steps, err := b.zoomSteps()
	if err != nil {
		return nil, err
	}

	labelUnit := unit.Day
	if b.IntervalUnit != "" {
		labelUnit, _ = unit.ParseUnitName(b.IntervalUnit)
	}

	def := Definition{
		Name:        b.Name,
		Params:      params,
		ZoomSteps:   steps,
		ZoomIndex:   b.ZoomIndex,
		PixelLength: pixelLength,
		LabelUnit:   labelUnit,
	}

	if b.unitKind() == UnitNumber {
		numberUnit := unit.NewNumber()
		numberUnit.Precision = settings.precision
		numberBand, err := New[float64](def, numberUnit, numberUnit)
		if err != nil {
			return nil, err
		}
		return numberBand, nil
	}

	dateUnit := unit.NewNativeDate()
	if settings.location != nil {
		dateUnit.Location = settings.location
	}
	if settings.now != nil {
		dateUnit.Now = settings.now
	}
	dateBand, err := New[time.Time](def, dateUnit, dateUnit)
	if err != nil {
		return nil, err
	}
	return dateBand, nil
}

// Build 按配置创建全部band
func (c *Config) Build(pixelLength float64, opts ...Option) ([]Track, error) {
	tracks := make([]Track, 0, len(c.Bands))
	for i := range c.Bands {
		track, err := c.Bands[i].Build(pixelLength, opts...)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}
