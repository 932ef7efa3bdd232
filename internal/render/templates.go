package render

// Static page markup. The structure and class names follow the published
// OpenInstructions site; the stylesheet is shared between pages via the
// baseStyles fragment.

const baseStyles = `
        :root {
            --primary-color: #4361ee;
            --primary-light: #4895ef;
            --secondary-color: #7209b7;
            --accent-color: #f72585;
            --text-color: #2b2d42;
            --text-light: #6c757d;
            --background-color: #fff;
            --light-bg-color: #f8f9fa;
            --card-bg-color: #ffffff;
            --border-color: #e9ecef;
            --header-height: 70px;
            --shadow-sm: 0 2px 4px rgba(0,0,0,0.05);
            --shadow-md: 0 4px 6px rgba(0,0,0,0.07);
            --shadow-lg: 0 10px 15px rgba(0,0,0,0.1);
            --border-radius: 8px;
        }
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Inter', -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
            line-height: 1.6;
            color: var(--text-color);
            background-color: var(--background-color);
        }
        .container { width: 100%; max-width: 1200px; margin: 0 auto; padding: 0 20px; }
        h1, h2, h3 { font-weight: 700; line-height: 1.3; }
        p { color: var(--text-light); margin-bottom: 1.5rem; }
        a { color: var(--primary-color); text-decoration: none; transition: color 0.2s; }
        a:hover { color: var(--primary-light); }
        header {
            position: fixed; top: 0; left: 0; right: 0;
            height: var(--header-height);
            background-color: rgba(255, 255, 255, 0.95);
            box-shadow: var(--shadow-sm);
            z-index: 1000;
            display: flex; align-items: center;
        }
        nav { display: flex; justify-content: space-between; align-items: center; height: 100%; }
        .logo { font-weight: 700; font-size: 1.5rem; color: var(--text-color); }
        .nav-links { display: flex; list-style: none; align-items: center; }
        .nav-links li { margin-left: 2rem; }
        .nav-links a { color: var(--text-color); font-weight: 500; }
        .github-link {
            background-color: var(--primary-color);
            color: white !important;
            padding: 0.5rem 1rem;
            border-radius: 50px;
        }
        .hero {
            padding: calc(var(--header-height) + 5rem) 0 5rem;
            background: linear-gradient(135deg, var(--primary-color) 0%, var(--secondary-color) 100%);
            color: white;
            text-align: center;
        }
        .hero h1 { font-size: 3.5rem; margin-bottom: 1.5rem; }
        .hero p { font-size: 1.25rem; max-width: 800px; margin: 0 auto 2rem; color: rgba(255, 255, 255, 0.85); }
        .btn {
            display: inline-flex; align-items: center; justify-content: center;
            padding: 0.75rem 1.75rem;
            font-weight: 600;
            border-radius: 50px;
        }
        .btn-primary { background-color: white; color: var(--primary-color); box-shadow: var(--shadow-md); }
        .section-title { text-align: center; margin-bottom: 1rem; font-size: 2.5rem; }
        .section-subtitle { text-align: center; max-width: 700px; margin: 0 auto 4rem; color: var(--text-light); }
        .features, .catalog, .specification { padding: 6rem 0; background-color: var(--light-bg-color); }
        .getting-started, .community { padding: 6rem 0; background-color: white; }
        .features-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(320px, 1fr));
            gap: 2rem;
        }
        .feature-card, .instruction-card, .spec-card {
            background-color: var(--card-bg-color);
            border-radius: var(--border-radius);
            padding: 1.75rem;
            box-shadow: var(--shadow-sm);
            border: 1px solid var(--border-color);
        }
        .catalog-version {
            text-align: center;
            margin: 0 auto 3rem;
            color: var(--text-light);
            background-color: rgba(0,0,0,0.03);
            padding: 0.5rem 1rem;
            border-radius: 50px;
            display: table;
        }
        .catalog-version strong { color: var(--primary-color); }
        .project-type { margin-bottom: 4rem; }
        .project-type h2 { font-size: 1.75rem; margin-bottom: 1.5rem; }
        .instruction-cards {
            display: grid;
            grid-template-columns: repeat(auto-fill, minmax(300px, 1fr));
            gap: 1.5rem;
        }
        .instruction-card h3 { font-size: 1.25rem; margin-bottom: 0.75rem; }
        .meta { display: flex; justify-content: space-between; align-items: center; }
        .version-tag {
            background-color: rgba(67, 97, 238, 0.1);
            color: var(--primary-color);
            font-size: 0.8rem;
            padding: 0.25rem 0.5rem;
            border-radius: 50px;
        }
        .steps { max-width: 850px; margin: 0 auto; }
        .step { margin-bottom: 3.5rem; }
        .step h3 { font-size: 1.5rem; margin-bottom: 1rem; }
        .step code, .step pre {
            background-color: var(--light-bg-color);
            border-radius: 4px;
            font-family: 'Menlo', 'Monaco', 'Courier New', monospace;
            font-size: 0.9rem;
        }
        .step code { padding: 0.2rem 0.4rem; color: var(--primary-color); }
        .step pre { padding: 1.25rem; overflow-x: auto; border: 1px solid var(--border-color); }
        .schema-table { width: 100%; border-collapse: collapse; font-size: 0.95rem; margin-bottom: 1rem; }
        .schema-table th { background-color: var(--text-color); color: white; text-align: left; padding: 0.75rem 1rem; }
        .schema-table td { padding: 0.75rem 1rem; border-bottom: 1px solid var(--border-color); vertical-align: top; }
        .schema-table td code {
            font-family: 'Menlo', 'Monaco', 'Courier New', monospace;
            background-color: rgba(0,0,0,0.03);
            padding: 0.2rem 0.4rem;
            border-radius: 4px;
            color: var(--primary-color);
        }
        .required, .optional {
            display: inline-block;
            font-size: 0.85rem;
            padding: 0.2rem 0.5rem;
            border-radius: 50px;
        }
        .required { background-color: rgba(67, 97, 238, 0.1); color: var(--primary-color); }
        .optional { background-color: rgba(108, 117, 125, 0.1); color: var(--text-light); }
        footer { background-color: #2b2d42; color: white; padding: 5rem 0 1rem; }
        .footer-content {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
            gap: 3rem;
        }
        .footer-col h3 { font-size: 1.25rem; margin-bottom: 1.5rem; color: white; }
        .footer-col p { color: rgba(255, 255, 255, 0.7); }
        .footer-links { list-style: none; }
        .footer-links li { margin-bottom: 0.75rem; }
        .footer-links a { color: rgba(255, 255, 255, 0.7); }
        .footer-links a:hover { color: white; }
        .footer-bottom {
            margin-top: 2rem;
            text-align: center;
            padding-top: 1rem;
            border-top: 1px solid rgba(255, 255, 255, 0.1);
            color: rgba(255, 255, 255, 0.6);
            font-size: 0.8rem;
        }
        @media (max-width: 768px) {
            .nav-links { display: none; }
            .hero h1 { font-size: 2rem; }
            .footer-content { grid-template-columns: 1fr; }
        }
`

const sharedFooter = `    <footer>
        <div class="container">
            <div class="footer-content">
                <div class="footer-col">
                    <h3>OpenInstructions</h3>
                    <p>An open-source initiative for structured, versioned instructions optimized for Large Language Models and developers.</p>
                </div>
                <div class="footer-col">
                    <h3>Resources</h3>
                    <ul class="footer-links">
                        <li><a href="{{.Site.RepoURL}}">GitHub Repository</a></li>
                        <li><a href="{{.Site.RepoURL}}/blob/main/CONTRIBUTING.md">Contributing Guide</a></li>
                        <li><a href="spec.html">Specification</a></li>
                        <li><a href="{{.Site.RepoURL}}/blob/main/LICENSE">License</a></li>
                    </ul>
                </div>
                <div class="footer-col">
                    <h3>Project</h3>
                    <ul class="footer-links">
                        <li><a href="index.html#features">Features</a></li>
                        <li><a href="index.html#getting-started">Getting Started</a></li>
                        <li><a href="index.html#catalog">Catalog</a></li>
                        <li><a href="index.html#community">Community</a></li>
                    </ul>
                </div>
            </div>
            <div class="footer-bottom">
                <p>&copy; 2025 OpenInstructions. MIT License.</p>
            </div>
        </div>
    </footer>`

const indexPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Site.Title}}</title>
    <meta name="description" content="{{.Site.Description}}">
    <meta property="og:title" content="{{.Site.Title}}">
    <meta property="og:description" content="{{.Site.Description}}">
    <meta property="og:type" content="website">
    <meta property="og:url" content="{{.Site.BaseURL}}">
    <link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap">
    <style>` + baseStyles + `    </style>
</head>
<body>
    <header>
        <div class="container">
            <nav>
                <a href="#" class="logo"><span>OpenInstructions</span></a>
                <ul class="nav-links">
                    <li><a href="#features">Features</a></li>
                    <li><a href="#getting-started">Getting Started</a></li>
                    <li><a href="#catalog">Catalog</a></li>
                    <li><a href="spec.html">Specification</a></li>
                    <li><a href="#community">Community</a></li>
                    <li><a href="{{.Site.RepoURL}}" class="github-link">GitHub</a></li>
                </ul>
            </nav>
        </div>
    </header>

    <section class="hero">
        <div class="container">
            <h1>Structured Instructions for Large Language Models</h1>
            <p>OpenInstructions is an open-source catalog of phase-based instructions for LLMs and developers to create and refactor development projects.</p>
            <a href="#getting-started" class="btn btn-primary">Get Started</a>
        </div>
    </section>

    <section class="features" id="features">
        <div class="container">
            <h2 class="section-title">Why OpenInstructions?</h2>
            <p class="section-subtitle">Structured, versioned guidance for efficient project development.</p>
            <div class="features-grid">
                <div class="feature-card">
                    <h3>Structured</h3>
                    <p>Detailed instructions split by project phase with dependency tracking between phases and tasks.</p>
                </div>
                <div class="feature-card">
                    <h3>Versioned</h3>
                    <p>Git-based versioning with semantic versioning for instructions and reliable access to specific versions.</p>
                </div>
                <div class="feature-card">
                    <h3>Modular</h3>
                    <p>Support for multiple variants with shared components, making it easy to adapt instructions to specific projects.</p>
                </div>
                <div class="feature-card">
                    <h3>AI-Ready</h3>
                    <p>Optimized for LLMs with clear task definitions and examples for consistent implementation by AI systems.</p>
                </div>
            </div>
        </div>
    </section>

    <section class="getting-started" id="getting-started">
        <div class="container">
            <h2 class="section-title">Getting Started</h2>
            <div class="steps">
                <div class="step">
                    <h3>Browse the instructions</h3>
                    <p>Check out the catalog of instructions for various project types below.</p>
                </div>
                <div class="step">
                    <h3>Access via direct URLs</h3>
                    <ul>
                        <li>Latest: <code>{{.Site.BaseURL}}/catalog/latest/project_types/cli/go/setup.yaml</code></li>
                        <li>Specific version: <code>{{.Site.BaseURL}}/catalog/v1/project_types/cli/go/setup.yaml</code></li>
                    </ul>
                </div>
                <div class="step">
                    <h3>Integrate with your application</h3>
                    <p>Fetch <code>catalog.json</code> for the machine-readable index of every instruction set.</p>
                </div>
            </div>
        </div>
    </section>

    <section class="catalog" id="catalog">
        <div class="container">
            <h2 class="section-title">Instruction Catalog</h2>
            <div class="catalog-version">
                <span>Version: <strong>{{.Version}}</strong> (Updated: {{.UpdatedDate}})</span>
            </div>
{{range .Categories}}
            <div class="project-type" id="category-{{.Key}}">
                <h2>{{.Title}}</h2>
                <div class="instruction-cards">
{{range .Entries}}
                    <div class="instruction-card">
                        <h3>{{.Title}}</h3>
                        <div>{{.Description}}</div>
                        <div class="meta">
                            <span class="version-tag">v{{.Version}}</span>
                            <a href="{{.Path}}">View YAML</a>
                        </div>
                    </div>
{{end}}
                </div>
            </div>
{{end}}
        </div>
    </section>

    <section class="community" id="community">
        <div class="container">
            <h2 class="section-title">Join Our Community</h2>
            <p class="section-subtitle">OpenInstructions is an open-source initiative. Join us in making instruction-following more structured and effective.</p>
            <div class="features-grid">
                <a href="{{.Site.RepoURL}}" class="feature-card">
                    <h3>Star on GitHub</h3>
                    <p>Show your support by starring the repository.</p>
                </a>
                <a href="{{.Site.RepoURL}}/discussions" class="feature-card">
                    <h3>Discussions</h3>
                    <p>Join the conversation and share your ideas for improving the catalog.</p>
                </a>
                <a href="{{.Site.RepoURL}}/issues" class="feature-card">
                    <h3>Issues</h3>
                    <p>Report bugs or request new features.</p>
                </a>
                <a href="{{.Site.RepoURL}}/blob/main/CONTRIBUTING.md" class="feature-card">
                    <h3>Contribute</h3>
                    <p>Learn how to submit your own instructions.</p>
                </a>
            </div>
        </div>
    </section>

` + sharedFooter + `
</body>
</html>
`

const specPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Schema Specification - OpenInstructions</title>
    <meta name="description" content="Schema specification for the OpenInstructions catalog.">
    <link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap">
    <style>` + baseStyles + `    </style>
</head>
<body>
    <header>
        <div class="container">
            <nav>
                <a href="index.html" class="logo"><span>OpenInstructions</span></a>
                <ul class="nav-links">
                    <li><a href="index.html#features">Features</a></li>
                    <li><a href="index.html#catalog">Catalog</a></li>
                    <li><a href="{{.Site.RepoURL}}" class="github-link">GitHub</a></li>
                </ul>
            </nav>
        </div>
    </header>

    <section class="specification">
        <div class="container">
            <h2 class="section-title">Schema Specification</h2>
            <p class="section-subtitle">OpenInstructions uses two primary schema types to define structured instruction sets.</p>

            <div class="spec-card">
                <h3>Project Type Root Schema</h3>
                <p>Defines the structure of a project type with its supported variants and lifecycle phases.</p>
                <table class="schema-table">
                    <thead>
                        <tr><th>Field</th><th>Type</th><th>Status</th><th>Description</th></tr>
                    </thead>
                    <tbody>
                        <tr><td><code>catalog_version</code></td><td>string</td><td><span class="required">Required</span></td><td>Version of the catalog specification (e.g., "0.1.0")</td></tr>
                        <tr><td><code>project_type</code></td><td>string</td><td><span class="required">Required</span></td><td>Project type identifier (e.g., "web_app")</td></tr>
                        <tr><td><code>title</code></td><td>string</td><td><span class="required">Required</span></td><td>Human-readable name of the project type</td></tr>
                        <tr><td><code>description</code></td><td>string</td><td><span class="required">Required</span></td><td>Description of the project type's purpose</td></tr>
                        <tr><td><code>variants</code></td><td>array</td><td><span class="required">Required</span></td><td>List of variant dimensions available for this project type</td></tr>
                        <tr><td><code>phases</code></td><td>array</td><td><span class="required">Required</span></td><td>Lifecycle phases in recommended sequence</td></tr>
                        <tr><td><code>global_context</code></td><td>object</td><td><span class="optional">Optional</span></td><td>Project-wide context information</td></tr>
                    </tbody>
                </table>
            </div>

            <div class="spec-card">
                <h3>Phase Instruction Schema</h3>
                <p>Defines the detailed implementation instructions for a specific phase.</p>
                <table class="schema-table">
                    <thead>
                        <tr><th>Field</th><th>Type</th><th>Status</th><th>Description</th></tr>
                    </thead>
                    <tbody>
                        <tr><td><code>instruction_id</code></td><td>string</td><td><span class="required">Required</span></td><td>Unique identifier for this instruction</td></tr>
                        <tr><td><code>title</code></td><td>string</td><td><span class="required">Required</span></td><td>Concise title of the instruction set</td></tr>
                        <tr><td><code>version</code></td><td>string</td><td><span class="required">Required</span></td><td>Version of this instruction (e.g., "0.1.0")</td></tr>
                        <tr><td><code>catalog_version</code></td><td>string</td><td><span class="required">Required</span></td><td>Version of the catalog specification</td></tr>
                        <tr><td><code>project_type</code></td><td>string</td><td><span class="required">Required</span></td><td>Must match parent project_type</td></tr>
                        <tr><td><code>phase</code></td><td>string</td><td><span class="required">Required</span></td><td>Must match phase.id from root schema</td></tr>
                        <tr><td><code>variant_option</code></td><td>string</td><td><span class="optional">Optional</span></td><td>Variant this instruction implements (e.g., "react")</td></tr>
                        <tr><td><code>context</code></td><td>object</td><td><span class="required">Required</span></td><td>Information about the "why" of these instructions</td></tr>
                        <tr><td><code>tasks</code></td><td>array</td><td><span class="required">Required</span></td><td>List of implementation tasks</td></tr>
                    </tbody>
                </table>
            </div>
        </div>
    </section>

` + sharedFooter + `
</body>
</html>
`
