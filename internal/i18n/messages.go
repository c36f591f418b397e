package i18n

// Key identifies a translatable message.
type Key string

const (
	AppTitle   Key = "app.title"
	NavConnect Key = "nav.connect"
	NavLogs    Key = "nav.logs"
	NavSQL     Key = "nav.sql"

	ConnectTitle               Key = "connect.title"
	ConnectDescription         Key = "connect.description"
	ConnectRegion              Key = "connect.region"
	ConnectEndpoint            Key = "connect.endpoint"
	ConnectEndpointPlaceholder Key = "connect.endpoint.placeholder"
	ConnectSubmit              Key = "connect.submit"
	ConnectSubmitting          Key = "connect.submitting"
	ConnectHint                Key = "connect.hint"

	LogsTitle      Key = "logs.title"
	LogsURI        Key = "logs.uri"
	LogsFormat     Key = "logs.format"
	LogsLimit      Key = "logs.limit"
	LogsSubmit     Key = "logs.submit"
	LogsSubmitting Key = "logs.submitting"
	LogsSQL        Key = "logs.sql"

	SQLTitle       Key = "sql.title"
	SQLLabel       Key = "sql.label"
	SQLSubmit      Key = "sql.submit"
	SQLSubmitting  Key = "sql.submitting"
	SQLHint        Key = "sql.hint"
	SQLPlaceholder Key = "sql.placeholder"

	Success  Key = "common.success"
	Error    Key = "common.error"
	NoData   Key = "table.nodata"
	FormHint Key = "form.hint"

	ResultsTitle      Key = "results.title"
	ResultsStats      Key = "results.stats"
	ResultsIdle       Key = "results.idle"
	ResultsLoading    Key = "results.loading"
	ResultsCopied     Key = "results.copied"
	ResultsCopyFailed Key = "results.copy_failed"
	ResultsNothing    Key = "results.nothing"
	ResultsRowCopied  Key = "results.row_copied"
	ResultsExported   Key = "results.exported"
	ResultsExportFail Key = "results.export_failed"

	StatusBackend      Key = "status.backend"
	StatusHints        Key = "status.hints"
	StatusLanguage     Key = "status.language"
	StatusLangSaveFail Key = "status.language_save_failed"

	HelpTitle   Key = "help.title"
	HelpGlobal  Key = "help.global"
	HelpForms   Key = "help.forms"
	HelpResults Key = "help.results"
	HelpNav     Key = "help.nav"
	HelpGrid    Key = "help.grid"
	HelpClose   Key = "help.close"
)

type translation struct {
	ja string
	en string
}

var translations = map[Key]translation{
	AppTitle:   {"S3 DuckLogs", "S3 DuckLogs"},
	NavConnect: {"接続", "Connect"},
	NavLogs:    {"ログ一覧", "Logs"},
	NavSQL:     {"SQL", "SQL"},

	ConnectTitle: {"接続設定", "Connection Settings"},
	ConnectDescription: {
		"DuckDB httpfs 拡張を有効化し、S3 リージョン/エンドポイントを設定します。AWS 認証情報は環境変数から自動取得されます。",
		"Enables the DuckDB httpfs extension and sets the S3 region/endpoint. AWS credentials are read from environment variables.",
	},
	ConnectRegion:              {"Region", "Region"},
	ConnectEndpoint:            {"Endpoint (任意: S3互換)", "Endpoint (optional: S3-compatible)"},
	ConnectEndpointPlaceholder: {"s3.amazonaws.com または http://minio:9000", "s3.amazonaws.com or http://minio:9000"},
	ConnectSubmit:              {"適用", "Apply"},
	ConnectSubmitting:          {"適用中…", "Applying…"},
	ConnectHint: {
		"例: aws s3 に対しては endpoint 空欄でOK / MinIO等は endpoint を指定し、必要に応じて AWS_* を設定",
		"Example: leave endpoint empty for AWS S3 / for MinIO and similar, set the endpoint and AWS_* as needed",
	},

	LogsTitle:      {"ログ一覧", "Logs"},
	LogsURI:        {"URI (s3://bucket/path/*.parquet 等)", "URI (e.g. s3://bucket/path/*.parquet)"},
	LogsFormat:     {"形式", "Format"},
	LogsLimit:      {"Limit", "Limit"},
	LogsSubmit:     {"読み込む", "Load"},
	LogsSubmitting: {"読み込み中…", "Loading…"},
	LogsSQL:        {"SQL: %s", "SQL: %s"},

	SQLTitle:       {"SQL 実行", "Run SQL"},
	SQLLabel:       {"SQL", "SQL"},
	SQLSubmit:      {"実行", "Run"},
	SQLSubmitting:  {"実行中…", "Running…"},
	SQLHint:        {"Ctrl+E / F5: 実行 │ Ctrl+L: キーワード整形 │ Ctrl+K: クリア", "Ctrl+E / F5: Run │ Ctrl+L: Format keywords │ Ctrl+K: Clear"},
	SQLPlaceholder: {"SQL を入力…", "Enter SQL…"},

	Success:  {"OK: %s", "OK: %s"},
	Error:    {"エラー: %s", "Error: %s"},
	NoData:   {"結果がありません", "No results"},
	FormHint: {"Tab: 次の項目 │ Enter: 送信 │ ←/→: 形式切替", "Tab: Next field │ Enter: Submit │ ←/→: Change format"},

	ResultsTitle:      {"結果", "Results"},
	ResultsStats:      {"%d 行 | %s", "%d row(s) | %s"},
	ResultsIdle:       {"送信すると結果がここに表示されます", "Submit to see results here"},
	ResultsLoading:    {"実行中…", "Executing…"},
	ResultsCopied:     {"コピーしました: %s", "Copied: %s"},
	ResultsCopyFailed: {"コピーに失敗しました: %s", "Copy failed: %s"},
	ResultsNothing:    {"コピーする値がありません", "Nothing to copy"},
	ResultsRowCopied:  {"行を JSON としてコピーしました", "Copied row as JSON"},
	ResultsExported:   {"%d 行を %s に書き出しました", "Exported %d rows to %s"},
	ResultsExportFail: {"書き出しに失敗しました: %s", "Export failed: %s"},

	StatusBackend:      {"バックエンド: %s", "Backend: %s"},
	StatusHints:        {"F1-F3: 画面 │ Ctrl+G: 言語 │ F10: ヘルプ │ Ctrl+C: 終了", "F1-F3: View │ Ctrl+G: Language │ F10: Help │ Ctrl+C: Quit"},
	StatusLanguage:     {"言語: %s", "Language: %s"},
	StatusLangSaveFail: {"言語設定を保存できませんでした: %s", "Could not save language preference: %s"},

	HelpTitle:   {"キー操作", "Keyboard Shortcuts"},
	HelpGlobal:  {"全体", "Global"},
	HelpForms:   {"フォーム", "Forms"},
	HelpResults: {"結果", "Results"},
	HelpNav:     {"F1/F2/F3・Ctrl+←/→: 画面切替 │ Ctrl+G: 日本語/English │ F10: ヘルプ │ Ctrl+C: 終了", "F1/F2/F3, Ctrl+←/→: Switch view │ Ctrl+G: 日本語/English │ F10: Help │ Ctrl+C: Quit"},
	HelpGrid:    {"↑↓←→・PgUp/PgDn: 移動 │ c: セルをコピー │ y: 行を JSON でコピー │ x: CSV に書き出し │ ?: ヘルプ", "↑↓←→, PgUp/PgDn: Move │ c: Copy cell │ y: Copy row as JSON │ x: Export CSV │ ?: Help"},
	HelpClose:   {"任意のキーで閉じる", "Press any key to close"},
}
