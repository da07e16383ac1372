package site

// defaultHostPage is the page the menu is injected into when no host page
// file is configured. The container element id is filled in at load time.
const defaultHostPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Our Menu</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@4.6.2/dist/css/bootstrap.min.css">
  <style>
    body { padding: 40px 0; }
    .menu-block { margin-bottom: 30px; }
    .menu-block .inner-box { display: flex; gap: 16px; align-items: center; }
    .menu-block .menu-image img { width: 96px; height: 96px; object-fit: cover; border-radius: 50%; }
    .menu-block h6 { margin: 0 0 4px; font-weight: 600; }
    .menu-block .title { color: #6c757d; font-size: 0.9rem; }
    .menu-block .price { font-weight: 700; }
  </style>
</head>
<body>
  <section class="menu-section">
    <div class="container">
      <div class="sec-title text-center mb-4">
        <h2>Our Smoothies</h2>
      </div>
      <div id="{{CONTAINER_ID}}"></div>
    </div>
  </section>
  <script src="https://cdn.jsdelivr.net/npm/jquery@3.7.1/dist/jquery.slim.min.js"></script>
  <script src="https://cdn.jsdelivr.net/npm/bootstrap@4.6.2/dist/js/bootstrap.bundle.min.js"></script>
</body>
</html>`
