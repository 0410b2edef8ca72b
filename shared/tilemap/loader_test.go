package tilemap

import (
	"errors"
	"testing"
	"testing/fstest"
)

const validTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16">
 <tileset firstgid="1" name="terrain" tilewidth="16" tileheight="16" tilecount="4" columns="2">
  <image source="terrain.png" width="32" height="32"/>
  <tile id="1">
   <properties>
    <property name="blocked" type="bool" value="true"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="ground" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
1,2,1,1,
1,1,1,1
</data>
 </layer>
 <layer id="2" name="collision" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,1,
0,0,0,0
</data>
 </layer>
</map>
`

func testFS(tmx string) fstest.MapFS {
	return fstest.MapFS{
		"maps/cove.tmx": &fstest.MapFile{Data: []byte(tmx)},
	}
}

func TestLoadValidMap(t *testing.T) {
	g, err := Load(testFS(validTMX), "maps/cove.tmx")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if g.Name() != "cove" {
		t.Errorf("Name = %q, want cove", g.Name())
	}
	if g.Width() != 4 || g.Height() != 3 || g.TileSize() != 16 {
		t.Errorf("dimensions = %dx%d ts %d, want 4x3 ts 16", g.Width(), g.Height(), g.TileSize())
	}
	if len(g.Layers()) != 2 {
		t.Fatalf("layer count = %d, want 2", len(g.Layers()))
	}

	// gid 2 is tileset tile 1, which carries the blocked property.
	if got := g.TileAt(0, 1, 1); got != 2 {
		t.Errorf("TileAt(ground,1,1) = %d, want 2", got)
	}
	if !g.Blocked(1, 1) {
		t.Error("cell (1,1) should be blocked via tile property")
	}
	if !g.Blocked(3, 1) {
		t.Error("cell (3,1) should be blocked via collision overlay")
	}
	if g.Blocked(0, 0) {
		t.Error("cell (0,0) should be free")
	}
}

func TestLoadMalformedXML(t *testing.T) {
	g, err := Load(testFS("<map><layer"), "maps/cove.tmx")
	if err == nil {
		t.Fatal("expected error for malformed TMX")
	}
	var mfe *MapFormatError
	if !errors.As(err, &mfe) {
		t.Fatalf("error %T is not *MapFormatError", err)
	}
	if mfe.Map != "cove" {
		t.Errorf("MapFormatError.Map = %q, want cove", mfe.Map)
	}
	if g != nil {
		t.Error("a rejected map must not yield a partial grid")
	}
}

func TestLoadUnknownTileGID(t *testing.T) {
	bad := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="2" height="1" tilewidth="16" tileheight="16">
 <tileset firstgid="1" name="terrain" tilewidth="16" tileheight="16" tilecount="4" columns="2">
  <image source="terrain.png" width="32" height="32"/>
 </tileset>
 <layer id="1" name="ground" width="2" height="1">
  <data encoding="csv">1,99</data>
 </layer>
</map>
`
	g, err := Load(testFS(bad), "maps/cove.tmx")
	if err == nil {
		t.Fatal("expected error for tile gid outside the tileset")
	}
	var mfe *MapFormatError
	if !errors.As(err, &mfe) {
		t.Fatalf("error %T is not *MapFormatError", err)
	}
	if g != nil {
		t.Error("a rejected map must not yield a partial grid")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(testFS(validTMX), "maps/nowhere.tmx")
	var mfe *MapFormatError
	if !errors.As(err, &mfe) {
		t.Fatalf("error %T is not *MapFormatError", err)
	}
	if mfe.Map != "nowhere" {
		t.Errorf("MapFormatError.Map = %q, want nowhere", mfe.Map)
	}
}

func TestFromTiledMapRejectsBadDimensions(t *testing.T) {
	bad := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="2" height="1" tilewidth="16" tileheight="8">
 <layer id="1" name="ground" width="2" height="1">
  <data encoding="csv">0,0</data>
 </layer>
</map>
`
	_, err := Load(testFS(bad), "maps/cove.tmx")
	var mfe *MapFormatError
	if !errors.As(err, &mfe) {
		t.Fatalf("error %T is not *MapFormatError", err)
	}
}
