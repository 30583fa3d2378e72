package rod

import "github.com/fwojciec/resumer"

// snapshotScript clones the rendered document and records each element's
// computed style and bounding box as attributes on the clone. Open shadow
// roots are inlined into their hosts. The live page is left untouched.
var snapshotScript = `() => {
  const annotate = (from, to) => {
    const style = window.getComputedStyle(from);
    const rect = from.getBoundingClientRect();
    to.setAttribute('` + resumer.AttrDisplay + `', style.display);
    to.setAttribute('` + resumer.AttrVisibility + `', style.visibility);
    to.setAttribute('` + resumer.AttrOpacity + `', style.opacity);
    to.setAttribute('` + resumer.AttrWidth + `', String(rect.width));
    to.setAttribute('` + resumer.AttrHeight + `', String(rect.height));
  };
  const copy = (from, to) => {
    annotate(from, to);
    const src = from.querySelectorAll('*');
    const dst = to.querySelectorAll('*');
    const hosts = from.shadowRoot ? [[from, to]] : [];
    for (let i = 0; i < src.length && i < dst.length; i++) {
      annotate(src[i], dst[i]);
      if (src[i].shadowRoot) hosts.push([src[i], dst[i]]);
    }
    for (const [host, target] of hosts) {
      for (const child of host.shadowRoot.childNodes) {
        const c = child.cloneNode(true);
        target.appendChild(c);
        if (child.nodeType === Node.ELEMENT_NODE) copy(child, c);
      }
    }
  };
  const root = document.documentElement.cloneNode(true);
  copy(document.documentElement, root);
  return '<!DOCTYPE html>' + root.outerHTML;
}`
