package compat

import (
	"encoding/json"
	"strings"
)

// featureTests are the runtime checks matching each Feature. The server's
// plan is a guess from the User-Agent; these run in the browser and load
// anything still missing.
var featureTests = map[Feature]string{
	FeaturePromise:              `typeof Promise==='function'`,
	FeatureFetch:                `'fetch' in window`,
	FeatureIntersectionObserver: `'IntersectionObserver' in window`,
	FeatureResizeObserver:       `'ResizeObserver' in window`,
	FeatureGlobalThis:           `typeof globalThis!=='undefined'`,
}

// PolyfillURL is where polyfill files are served from.
func PolyfillURL(base string, f Feature) string {
	return strings.TrimSuffix(base, "/") + "/" + string(f) + ".js"
}

// FeatureDetectScript returns an inline script that synchronously loads a
// polyfill for every feature the browser lacks, skipping those the plan
// already loads with a script tag.
func FeatureDetectScript(base string, p Plan) string {
	loaded := make(map[Feature]bool, len(p.Polyfills))
	for _, f := range p.Polyfills {
		loaded[f] = true
	}

	var b strings.Builder
	b.WriteString("(function(){var m=[];")
	for _, f := range Features {
		if loaded[f] {
			continue
		}
		b.WriteString("if(!(")
		b.WriteString(featureTests[f])
		b.WriteString("))m.push(")
		b.WriteString(jsString(PolyfillURL(base, f)))
		b.WriteString(");")
	}
	b.WriteString("for(var i=0;i<m.length;i++){document.write('<script src=\"'+m[i]+'\"><\\/script>')}")
	b.WriteString("document.documentElement.className+=m.length?' js-polyfilled':' js-modern'})();")
	return b.String()
}

// StorageClearScript wipes client storage once per version. It runs before
// the page scripts so they start from a clean state.
func StorageClearScript(version string) string {
	v := jsString(version)
	return `(function(){var k='storage_cleared';try{if(localStorage.getItem(k)===` + v + `)return}catch(e){}` +
		`try{localStorage.clear()}catch(e){}try{sessionStorage.clear()}catch(e){}` +
		`try{if(navigator.serviceWorker&&navigator.serviceWorker.getRegistrations){navigator.serviceWorker.getRegistrations().then(function(rs){rs.forEach(function(r){r.unregister()})})}}catch(e){}` +
		`try{if(window.caches&&caches.keys){caches.keys().then(function(ns){ns.forEach(function(n){caches.delete(n)})})}}catch(e){}` +
		`try{localStorage.setItem(k,` + v + `)}catch(e){}})();`
}

// RecoveryScript reloads the page once when a script or stylesheet fails to
// load (typically a stale cached HTML pointing at a removed asset) and
// reports the failure to endpoint. A second failure in the same session is
// only reported.
func RecoveryScript(endpoint string) string {
	return `(function(){var K='recovery_reloaded';` +
		`function get(){try{return sessionStorage.getItem(K)}catch(e){return '1'}}` +
		`function set(){try{sessionStorage.setItem(K,'1');return true}catch(e){return false}}` +
		`function isLoadError(m){return /Loading chunk|ChunkLoadError|dynamically imported module|Importing a module script failed/i.test(m||'')}` +
		`function report(d){try{var b=JSON.stringify(d);if(navigator.sendBeacon){navigator.sendBeacon(` + jsString(endpoint) + `,new Blob([b],{type:'application/json'}))}}catch(e){}}` +
		`function recover(m,src){var again=!!get();report({message:String(m).slice(0,500),source:String(src||'').slice(0,500),url:location.href,reloaded:again});if(!again&&set()){location.reload()}}` +
		`window.addEventListener('error',function(e){var t=e.target;if(t&&t!==window&&(t.tagName==='SCRIPT'||t.tagName==='LINK')){var s=t.src||t.href;recover('resource failed: '+s,s);return}if(isLoadError(e.message))recover(e.message,e.filename)},true);` +
		`window.addEventListener('unhandledrejection',function(e){var r=e.reason;var m=r&&(r.message||String(r));if(isLoadError(m))recover(m,'')});` +
		`window.addEventListener('load',function(){setTimeout(function(){try{sessionStorage.removeItem(K)}catch(e){}},10000)})})();`
}

// jsString quotes s as a JavaScript string literal safe inside <script>.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
