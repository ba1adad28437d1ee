package terrain

// Each vertex arrives as two packed uint32 words:
//
//	word 0: x:8 | y:8 | z:8 | red:8
//	word 1: green:8 | blue:8 | normal:3 | ao1:2 | ao2:2 | ao3:2 | ao4:2 | reversed:1 | reserved:4
//
// Corner positions are chunk-relative; the chunkOffset uniform places them
// in world space. The AO channel for this vertex is selected by
// gl_VertexID & 3, which is the corner index within the quad.

const vertexShader = `#version 410 core

layout (location = 0) in uvec2 words;

uniform mat4 proj;
uniform mat4 view;
uniform vec3 chunkOffset;

out vec3 vertColor;
out vec3 vertNormal;
out float vertAO;
out float viewDist;

const vec3 normals[6] = vec3[6](
	vec3(0.0, 0.0, 1.0),
	vec3(0.0, 1.0, 0.0),
	vec3(1.0, 0.0, 0.0),
	vec3(0.0, 0.0, -1.0),
	vec3(0.0, -1.0, 0.0),
	vec3(-1.0, 0.0, 0.0)
);

void main() {
	uint w0 = words.x;
	uint w1 = words.y;

	vec3 pos = vec3(
		float((w0 >> 24) & 0xFFu),
		float((w0 >> 16) & 0xFFu),
		float((w0 >> 8) & 0xFFu));
	vec3 color = vec3(
		float(w0 & 0xFFu),
		float((w1 >> 24) & 0xFFu),
		float((w1 >> 16) & 0xFFu)) / 255.0;

	uint corner = uint(gl_VertexID) & 3u;
	uint ao = (w1 >> (11u - 2u * corner)) & 3u;

	vec4 viewPos = view * vec4(pos + chunkOffset, 1.0);
	gl_Position = proj * viewPos;

	vertColor = color;
	vertNormal = normals[(w1 >> 13) & 7u];
	vertAO = 1.0 - float(ao) / 3.0 * 0.6;
	viewDist = length(viewPos.xyz);
}
`

const fragmentShader = `#version 410 core

in vec3 vertColor;
in vec3 vertNormal;
in float vertAO;
in float viewDist;

uniform vec3 lightDir;
uniform vec3 skyColor;
uniform float fogFalloff;
uniform float fogCurve;

out vec4 fragColor;

void main() {
	float brightness = 0.6 + 0.4 * max(dot(vertNormal, lightDir), 0.0);
	vec3 lit = vertColor * brightness * vertAO;
	float fog = clamp(pow(viewDist / fogFalloff, fogCurve), 0.0, 1.0);
	fragColor = vec4(mix(lit, skyColor, fog), 1.0);
}
`
