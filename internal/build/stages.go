package build

// StageName identifies one step of the catalog build pipeline.
type StageName string

const (
	StagePrepareOutput StageName = "prepare_output"
	StageDiscover      StageName = "discover"
	StageValidate      StageName = "validate"
	StageBuildIndex    StageName = "build_index"
	StageWriteIndex    StageName = "write_index"
	StageCopyContent   StageName = "copy_content"
	StageCopySchemas   StageName = "copy_schemas"
	StageRenderPages   StageName = "render_pages"
	StageVerifyPages   StageName = "verify_pages"
	StageWriteReport   StageName = "write_report"
	StageWriteMetrics  StageName = "write_metrics"
)

// Status values for a completed build.
const (
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusFatal   = "fatal"
)
