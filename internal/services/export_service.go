package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"path"
	"time"

	"github.com/jlaffaye/ftp"

	"quizmaker/internal/models/db_models"
	"quizmaker/pkg/utils"
)

type FTPConfig struct {
	Addr      string // host:port
	Username  string
	Password  string
	RemoteDir string
	PublicURL string // base URL the uploaded files are served from
}

// ExportResult describes one published export: where it lives and the
// iframe snippet owners paste into their own sites.
type ExportResult struct {
	URL          string `json:"url"`
	EmbedSnippet string `json:"embed_snippet"`
}

type ExportServiceInterface interface {
	// RenderHTML produces the self-contained static page for a quiz. The
	// quiz data is inlined as JSON so the page runs without the API.
	RenderHTML(quiz *db_models.Quiz) ([]byte, error)

	// Publish renders and uploads the page for the viewer's quiz. Paid
	// feature: the viewer must have the quiz unlocked.
	Publish(ctx context.Context, viewer Viewer, identifier string) (*ExportResult, error)
}

type ExportService struct {
	lookup       LookupServiceInterface
	entitlements EntitlementServiceInterface
	cfg          FTPConfig
	tpl          *template.Template
}

func NewExportService(lookup LookupServiceInterface, entitlements EntitlementServiceInterface, cfg FTPConfig) *ExportService {
	return &ExportService{
		lookup:       lookup,
		entitlements: entitlements,
		cfg:          cfg,
		tpl:          template.Must(template.New("export").Parse(exportTemplate)),
	}
}

func (e *ExportService) RenderHTML(quiz *db_models.Quiz) ([]byte, error) {
	if len(quiz.Questions) == 0 || len(quiz.Results) == 0 {
		return nil, utils.ErrQuizMisconfigured
	}

	payload, err := json.Marshal(map[string]any{
		"title":     quiz.Title,
		"mode":      quiz.Mode,
		"color":     quiz.Color,
		"layout":    quiz.Layout,
		"questions": quiz.Questions,
		"results":   quiz.Results,
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = e.tpl.Execute(&buf, map[string]any{
		"Title":       quiz.Title,
		"Description": quiz.Description,
		"Color":       quiz.Color,
		"Payload":     template.JS(string(payload)),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *ExportService) Publish(ctx context.Context, viewer Viewer, identifier string) (*ExportResult, error) {
	quiz, err := e.lookup.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}

	unlocked, err := e.entitlements.IsUnlocked(ctx, viewer, quiz.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !unlocked {
		return nil, utils.ErrFeatureLocked
	}

	page, err := e.RenderHTML(quiz)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("%s.html", quiz.Slug)
	if err := e.upload(filename, page); err != nil {
		return nil, fmt.Errorf("export upload: %w", err)
	}

	url := fmt.Sprintf("%s/%s", e.cfg.PublicURL, filename)
	return &ExportResult{
		URL:          url,
		EmbedSnippet: fmt.Sprintf(`<iframe src=%q width="100%%" height="600" frameborder="0"></iframe>`, url),
	}, nil
}

func (e *ExportService) upload(filename string, content []byte) error {
	conn, err := ftp.Dial(e.cfg.Addr, ftp.DialWithTimeout(15*time.Second))
	if err != nil {
		return err
	}
	defer conn.Quit()

	if err := conn.Login(e.cfg.Username, e.cfg.Password); err != nil {
		return err
	}
	return conn.Stor(path.Join(e.cfg.RemoteDir, filename), bytes.NewReader(content))
}

const exportTemplate = `<!doctype html>
<html lang="ja">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
  <meta name="description" content="{{.Description}}">
  <style>
    :root { --accent: {{.Color}}; }
    body { margin: 0; font-family: system-ui, sans-serif; background: #fafafa; color: #1f2937; }
    .wrap { max-width: 640px; margin: 0 auto; padding: 24px 16px; }
    h1 { color: var(--accent); }
    .option { display: block; width: 100%; margin: 8px 0; padding: 12px 16px; border: 1px solid #d1d5db; border-radius: 8px; background: #fff; cursor: pointer; text-align: left; font-size: 15px; }
    .option:hover { border-color: var(--accent); }
    .result h2 { color: var(--accent); }
    .hidden { display: none; }
    a.cta { display: inline-block; margin-top: 16px; padding: 10px 20px; background: var(--accent); color: #fff; border-radius: 8px; text-decoration: none; }
  </style>
</head>
<body>
  <div class="wrap">
    <h1>{{.Title}}</h1>
    <div id="quiz"></div>
    <div id="result" class="result hidden"></div>
  </div>
  <script>
    const quiz = {{.Payload}};
    const answers = {};
    let current = 0;

    function esc(s) {
      const d = document.createElement("div");
      d.textContent = s == null ? "" : String(s);
      return d.innerHTML;
    }

    function render() {
      const el = document.getElementById("quiz");
      if (current >= quiz.questions.length) { finish(); return; }
      const q = quiz.questions[current];
      el.innerHTML = "<p>" + esc(q.text) + "</p>" +
        q.options.map((o, i) => '<button class="option" data-i="' + i + '">' + esc(o.label) + "</button>").join("");
      el.querySelectorAll(".option").forEach(btn => btn.onclick = () => {
        answers[current] = q.options[Number(btn.dataset.i)];
        current++;
        render();
      });
    }

    function pick() {
      if (quiz.mode === "fortune") {
        return { result: quiz.results[Math.floor(Math.random() * quiz.results.length)] };
      }
      if (quiz.mode === "test") {
        const total = Object.keys(answers).length;
        let correct = 0;
        for (const k in answers) {
          if ((answers[k].score || {})["A"] === 1) correct++;
        }
        const ratio = total > 0 ? correct / total : 0;
        let idx = Math.floor((1 - ratio) * quiz.results.length);
        if (ratio === 1) idx = 0;
        if (idx >= quiz.results.length) idx = quiz.results.length - 1;
        return { result: quiz.results[idx], score: correct, total: total };
      }
      const tally = {};
      for (const k in answers) {
        const score = answers[k].score || {};
        for (const t in score) tally[t] = (tally[t] || 0) + score[t];
      }
      let best = quiz.results[0];
      let bestScore = -Infinity;
      for (const r of quiz.results) {
        if (r.type in tally && tally[r.type] > bestScore) { best = r; bestScore = tally[r.type]; }
      }
      return { result: best };
    }

    function finish() {
      const out = pick();
      const r = out.result;
      document.getElementById("quiz").classList.add("hidden");
      const el = document.getElementById("result");
      el.classList.remove("hidden");
      let html = "<h2>" + esc(r.title) + "</h2><p>" + esc(r.description) + "</p>";
      if (out.total !== undefined) html = "<p>" + out.score + " / " + out.total + "</p>" + html;
      if (r.link_url) html += '<a class="cta" href="' + esc(r.link_url) + '">' + esc(r.link_text || r.link_url) + "</a>";
      el.innerHTML = html;
    }

    render();
  </script>
</body>
</html>`
