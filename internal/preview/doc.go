package preview

// Package preview fetches the rendered wallpaper behind the panel's preview
// reference. Each new reference supersedes the previous one: its fetch is
// cancelled and only the latest request may publish an image. Progress is
// reported through an update callback, like the other services the UI binds to.
