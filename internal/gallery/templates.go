package gallery

// pageTemplate is the Go html/template for the gallery page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <h2 class="project-title">{{.Title}}</h2>
    </div>
    <ul class="section-index" id="section-index">
      {{range .Sections}}
      <li><a href="#{{.ID}}" data-section="{{.ID}}">{{.Heading}}</a></li>
      {{end}}
    </ul>
  </nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content">
    <div class="top-bar">
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
      <h1 class="page-title">{{.Title}}</h1>
    </div>
    {{if .Intro}}
    <div class="gallery-intro">{{.Intro}}</div>
    {{end}}
    {{range .Sections}}
    <section class="gallery-section" id="{{.ID}}">
      <h2 class="section-heading">{{.Heading}}</h2>
      <div class="card-grid">
        {{range .Items}}
        <div class="card">
          <a class="card-preview" href="{{.Preview.URL}}">
            <img src="{{.Preview.URL}}" alt="{{.BaseName}}" loading="lazy">
          </a>
          <div class="card-caption">
            <span class="card-name" title="{{.BaseName}}">{{.BaseName}}</span>
            <span class="card-path" title="{{.RelPath}}">{{.RelPath}}</span>
          </div>
          <div class="card-downloads">
            {{range .Variants}}<a class="download-chip" href="{{.URL}}" download>{{.Extension}}</a>{{end}}
          </div>
        </div>
        {{end}}
      </div>
    </section>
    {{end}}
  </main>
  <script src="script.js"></script>
  {{if .LiveReload}}
  <script>
    (function() {
      var proto = location.protocol === "https:" ? "wss" : "ws";
      var sock = new WebSocket(proto + "://" + location.host + "/ws/reload");
      sock.onmessage = function() { location.reload(); };
    })();
  </script>
  {{end}}
</body>
</html>`

// cssContent is the stylesheet for the gallery page.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-hover: #1c7ed6;
  --accent-light: #e7f5ff;
  --sidebar-width: 280px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.1);
}

* { margin: 0; padding: 0; box-sizing: border-box; }

html { scroll-behavior: smooth; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
}

/* ============ Sidebar ============ */
.sidebar {
  position: fixed;
  top: 0;
  left: 0;
  bottom: 0;
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  overflow-y: auto;
  z-index: 20;
}

.sidebar-header {
  padding: 20px 16px 12px;
  border-bottom: 1px solid var(--border);
}

.project-title {
  font-size: 1.05rem;
  font-weight: 650;
}

.section-index {
  list-style: none;
  padding: 8px 0;
}

.section-index a {
  display: block;
  padding: 6px 16px;
  color: var(--text-secondary);
  text-decoration: none;
  font-size: 0.88rem;
  white-space: nowrap;
  overflow: hidden;
  text-overflow: ellipsis;
  border-left: 3px solid transparent;
}

.section-index a:hover {
  background: var(--accent-light);
  color: var(--accent);
}

.section-index a.current {
  background: var(--accent-light);
  color: var(--accent);
  border-left-color: var(--accent);
  font-weight: 600;
}

.sidebar-overlay {
  display: none;
}

/* ============ Content ============ */
.content {
  margin-left: var(--sidebar-width);
  padding: 0 32px 64px;
}

.top-bar {
  display: flex;
  align-items: center;
  gap: 12px;
  padding: 16px 0;
  position: sticky;
  top: 0;
  background: var(--bg);
  border-bottom: 1px solid var(--border);
  z-index: 10;
}

.page-title {
  font-size: 1.25rem;
  font-weight: 650;
}

.menu-toggle {
  display: none;
  background: none;
  border: none;
  color: var(--text);
  cursor: pointer;
  padding: 4px;
}

.gallery-intro {
  max-width: 720px;
  padding: 20px 0 4px;
  color: var(--text-secondary);
}

.gallery-intro h1, .gallery-intro h2 { margin-bottom: 8px; color: var(--text); }
.gallery-intro p { margin-bottom: 8px; }

/* ============ Sections & cards ============ */
.gallery-section {
  padding-top: 28px;
}

.section-heading {
  font-size: 1.1rem;
  font-weight: 650;
  margin-bottom: 14px;
  color: var(--text);
}

.card-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(180px, 1fr));
  gap: 16px;
}

.card {
  background: var(--bg-secondary);
  border: 1px solid var(--border);
  border-radius: 8px;
  overflow: hidden;
  box-shadow: var(--shadow);
  display: flex;
  flex-direction: column;
}

.card:hover {
  box-shadow: var(--shadow-lg);
}

.card-preview {
  display: block;
  aspect-ratio: 1 / 1;
  background: var(--bg);
  border-bottom: 1px solid var(--border);
}

.card-preview img {
  width: 100%;
  height: 100%;
  object-fit: contain;
  padding: 10px;
}

.card-caption {
  display: flex;
  flex-direction: column;
  padding: 8px 10px 4px;
  min-width: 0;
}

.card-name {
  font-size: 0.85rem;
  font-weight: 600;
  white-space: nowrap;
  overflow: hidden;
  text-overflow: ellipsis;
}

.card-path {
  font-size: 0.72rem;
  color: var(--text-muted);
  white-space: nowrap;
  overflow: hidden;
  text-overflow: ellipsis;
}

.card-downloads {
  display: flex;
  flex-wrap: wrap;
  gap: 6px;
  padding: 6px 10px 10px;
}

.download-chip {
  font-size: 0.7rem;
  font-weight: 600;
  text-transform: uppercase;
  letter-spacing: 0.03em;
  color: var(--accent);
  background: var(--accent-light);
  border-radius: 4px;
  padding: 2px 8px;
  text-decoration: none;
}

.download-chip:hover {
  background: var(--accent);
  color: #fff;
}

/* ============ Overlay sidebar (narrow viewports) ============ */
@media (max-width: 900px) {
  .sidebar {
    transform: translateX(-100%);
    transition: transform 0.2s ease;
    box-shadow: var(--shadow-lg);
  }

  .sidebar.open {
    transform: translateX(0);
  }

  .sidebar-overlay {
    display: block;
    position: fixed;
    inset: 0;
    background: rgba(0,0,0,0.35);
    opacity: 0;
    pointer-events: none;
    transition: opacity 0.2s ease;
    z-index: 15;
  }

  .sidebar-overlay.visible {
    opacity: 1;
    pointer-events: auto;
  }

  .content {
    margin-left: 0;
    padding: 0 16px 48px;
  }

  .menu-toggle {
    display: block;
  }
}`

// jsContent is the sidebar and scroll-tracking script for the gallery page.
const jsContent = `(function() {
  "use strict";

  var sections = Array.prototype.slice.call(document.querySelectorAll(".gallery-section"));
  var links = Array.prototype.slice.call(document.querySelectorAll("#section-index a"));
  var sidebar = document.getElementById("sidebar");
  var overlay = document.getElementById("sidebar-overlay");
  var menuToggle = document.getElementById("menu-toggle");

  // Lookahead below the top of the viewport; a section is active while it
  // is passing through this anchor line.
  var SCROLL_OFFSET = 120;

  var activeId = null;
  var hoveredId = null;

  function isOverlay() {
    return window.matchMedia("(max-width: 900px)").matches;
  }

  function openSidebar() {
    sidebar.classList.add("open");
    overlay.classList.add("visible");
  }

  function closeSidebar() {
    sidebar.classList.remove("open");
    overlay.classList.remove("visible");
  }

  function toggleSidebar() {
    if (sidebar.classList.contains("open")) {
      closeSidebar();
    } else {
      openSidebar();
    }
  }

  // A hovered entry overrides the scrolled-to entry for highlighting only.
  function updateHighlight() {
    var id = hoveredId !== null ? hoveredId : activeId;
    links.forEach(function(link) {
      link.classList.toggle("current", link.getAttribute("data-section") === id);
    });
  }

  function onScroll() {
    var anchor = window.scrollY + SCROLL_OFFSET;
    var current = null;
    sections.forEach(function(section) {
      if (section.offsetTop <= anchor) {
        current = section.id;
      }
    });
    // Keep the previous active section when nothing qualifies, so the
    // highlight does not flicker away at the very top of the page.
    if (current !== null && current !== activeId) {
      activeId = current;
      updateHighlight();
    }
  }

  links.forEach(function(link) {
    link.addEventListener("mouseenter", function() {
      hoveredId = link.getAttribute("data-section");
      updateHighlight();
    });
    link.addEventListener("mouseleave", function() {
      hoveredId = null;
      updateHighlight();
    });
    link.addEventListener("click", function(e) {
      e.preventDefault();
      var target = document.getElementById(link.getAttribute("data-section"));
      if (target) {
        target.scrollIntoView({ behavior: "smooth" });
      }
      if (isOverlay()) {
        closeSidebar();
      }
    });
  });

  if (menuToggle) menuToggle.addEventListener("click", toggleSidebar);
  if (overlay) overlay.addEventListener("click", closeSidebar);

  document.addEventListener("keydown", function(e) {
    if (e.key === "Escape" && isOverlay()) {
      closeSidebar();
    }
  });

  window.addEventListener("scroll", onScroll, { passive: true });
  onScroll();
})();`
