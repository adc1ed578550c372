package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/ByLCY/exhibit/binding"
	"github.com/ByLCY/exhibit/config"
	"github.com/ByLCY/exhibit/dsl"
	"github.com/ByLCY/exhibit/fonts"
	"github.com/ByLCY/exhibit/item"
	"github.com/ByLCY/exhibit/layout"
	canvasrenderer "github.com/ByLCY/exhibit/renderer/canvas"
)

var (
	version     = "0.3.0"
	configFlag  string
	fontFlag    string
	verboseFlag bool

	inputFlag  string
	outputFlag string
	scriptFlag string
	dataFlag   string
	debugFlag  string

	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:           "exhibit",
		Short:         "exhibit - 生成固定网格的题干与拖放题图片",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			cfg = loaded
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			if verboseFlag {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	basicCmd = &cobra.Command{
		Use:   "basic",
		Short: "生成普通题干图片",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRenderer()
			if err != nil {
				return err
			}
			text, err := readInput(cmd.InOrStdin(), inputFlag)
			if err != nil {
				return err
			}
			dest, err := expand(outputFlag)
			if err != nil {
				return err
			}
			a, err := item.Basic(cfg.Metrics, cfg.Limits, text, dest)
			if err != nil {
				return fmt.Errorf("生成题干失败: %w", err)
			}
			slog.Debug("basic exhibit", "width", a.Frame.Width, "height", a.Frame.Height)
			written, err := item.Write(r, []item.Artifact{a})
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), written)
			return nil
		},
	}

	dndCmd = &cobra.Command{
		Use:   "dnd",
		Short: "回放拖放题脚本并生成题干与选项图片",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRenderer()
			if err != nil {
				return err
			}
			session, pb, err := play()
			if err != nil {
				return err
			}
			dest := outputFlag
			if dest == "" {
				dest = pb.Output
			}
			if dest, err = expand(dest); err != nil {
				return err
			}
			artifacts, err := session.Generate(dest)
			if err != nil {
				return fmt.Errorf("生成拖放题失败: %w", err)
			}
			logCommitted("final layout", session.Committed())

			if debugFlag != "" {
				if err := writeDebug(session.Report(artifacts), debugFlag); err != nil {
					return err
				}
			}
			written, err := item.Write(r, artifacts)
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), written)
			return nil
		},
	}

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "只回放脚本并输出布局 JSON，不生成图片",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, pb, err := play()
			if err != nil {
				return err
			}
			dest := pb.Output
			if dest == "" {
				dest = "exhibit.png"
			}
			artifacts, err := session.Generate(dest)
			if err != nil {
				return fmt.Errorf("布局检查失败: %w", err)
			}
			data, err := layout.MarshalReport(session.Report(artifacts))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	fontsCmd = &cobra.Command{
		Use:   "fonts",
		Short: "显示将要使用的字体及其字宽",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := resolveFont()
			if err != nil {
				return err
			}
			r := canvasrenderer.NewRenderer(src)
			adv, err := r.Advance(cfg.Metrics)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "font:    %s\nadvance: %.2fpx (grid %dpx)\n", src, adv, cfg.Metrics.CharWidth)
			if d := adv - float64(cfg.Metrics.CharWidth); d > 0.5 || d < -0.5 {
				slog.Warn("font advance does not match the character grid", "advance", adv, "grid", cfg.Metrics.CharWidth)
			}
			return nil
		},
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "以 TOML 输出当前生效的配置",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "显示版本号",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "exhibit version %s\n", version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "配置文件路径（默认 ~/.exhibit/config.toml）")
	rootCmd.PersistentFlags().StringVar(&fontFlag, "font", "", "字体文件路径，或 builtin:mono")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "输出调试日志")

	basicCmd.Flags().StringVarP(&inputFlag, "in", "i", "", "题干文本文件，- 表示标准输入")
	basicCmd.Flags().StringVarP(&outputFlag, "out", "o", "", "PNG 输出路径")
	_ = basicCmd.MarkFlagRequired("in")

	for _, c := range []*cobra.Command{dndCmd, checkCmd} {
		c.Flags().StringVarP(&scriptFlag, "script", "s", "", "拖放题脚本路径")
		c.Flags().StringVar(&dataFlag, "data", "", "绑定到脚本的 JSON 数据")
		_ = c.MarkFlagRequired("script")
	}
	dndCmd.Flags().StringVarP(&outputFlag, "out", "o", "", "题干 PNG 输出路径（覆盖脚本中的 output）")
	dndCmd.Flags().StringVar(&debugFlag, "debug", "", "布局调试 JSON 输出路径")

	rootCmd.AddCommand(basicCmd, dndCmd, checkCmd, fontsCmd, configCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("exhibit failed", "err", err, "kind", layout.KindOf(err))
		os.Exit(1)
	}
}

// resolveFont 按 --font、配置文件、平台默认的顺序决定字体。
func resolveFont() (string, error) {
	configured := fontFlag
	if configured == "" {
		p, err := cfg.FontPath()
		if err != nil {
			return "", err
		}
		configured = p
	}
	src, err := fonts.Resolve(configured, runtime.GOOS)
	if err != nil {
		return "", fmt.Errorf("无法确定字体: %w", err)
	}
	return src, nil
}

// newRenderer 在生成任何图片之前加载字体，字体不可用时直接失败。
func newRenderer() (*canvasrenderer.Renderer, error) {
	src, err := resolveFont()
	if err != nil {
		return nil, err
	}
	r := canvasrenderer.NewRenderer(src)
	if err := r.Preload(); err != nil {
		return nil, fmt.Errorf("加载字体失败: %w", err)
	}
	slog.Debug("font loaded", "src", src)
	return r, nil
}

// play 解析脚本并在新会话上回放，每条语句之后记录已提交的尺寸。
func play() (*item.Session, item.Playback, error) {
	path, err := expand(scriptFlag)
	if err != nil {
		return nil, item.Playback{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, item.Playback{}, fmt.Errorf("无法打开脚本 %s: %w", path, err)
	}
	defer file.Close()

	script, err := dsl.Parse(path, file)
	if err != nil {
		return nil, item.Playback{}, fmt.Errorf("解析脚本失败: %w", err)
	}
	data, err := binding.Decode(dataFlag)
	if err != nil {
		return nil, item.Playback{}, err
	}
	warnUnresolved(script, data)

	session := item.NewSession(cfg.Metrics, cfg.Limits)
	pb, err := item.Play(session, script, data)
	for _, step := range pb.Steps {
		slog.Debug("statement", "line", step.Line, "kind", step.Kind, "slot", step.Slot)
		if step.Slot > 0 {
			logCommitted("committed", step.Committed)
		}
	}
	if err != nil {
		return nil, pb, err
	}
	return session, pb, nil
}

func warnUnresolved(script *dsl.Script, data any) {
	for _, st := range script.Statements {
		for _, t := range []*dsl.Text{st.Exhibit, st.Option, st.Output} {
			if t == nil {
				continue
			}
			for _, path := range binding.Unresolved(t.String(), data) {
				slog.Warn("unresolved binding", "line", st.Pos.Line, "path", path)
			}
		}
	}
}

func logCommitted(msg string, c layout.CommittedLayout) {
	slog.Info(msg,
		"exhibit", fmt.Sprintf("%dx%d", c.Exhibit.Width, c.Exhibit.Height),
		"options", fmt.Sprintf("%dx%d", c.Options.Size.Width, c.Options.Size.Height),
		"total", fmt.Sprintf("%dx%d", c.Total.Width, c.Total.Height),
		"columns", c.Options.Columns,
	)
}

// readInput 读取题干文本，"-" 表示标准输入。文件末尾的一个换行不算作新的一行。
func readInput(stdin io.Reader, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("未指定题干文件（用 -i - 从标准输入读取）")
	}
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("读取标准输入失败: %w", err)
		}
		return trimFinalNewline(string(data)), nil
	}
	expanded, err := expand(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return "", fmt.Errorf("无法读取题干文件 %s: %w", expanded, err)
	}
	return trimFinalNewline(string(data)), nil
}

func trimFinalNewline(text string) string {
	if t, ok := strings.CutSuffix(text, "\r\n"); ok {
		return t
	}
	return strings.TrimSuffix(text, "\n")
}

func writeDebug(rep *layout.Report, debugPath string) error {
	path, err := expand(debugPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(rep, path); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

func report(w io.Writer, written []string) {
	for _, p := range written {
		slog.Info("image written", "path", p)
		fmt.Fprintf(w, "已生成图片：%s\n", p)
	}
}

func expand(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("无法展开路径 %s: %w", path, err)
	}
	return expanded, nil
}
